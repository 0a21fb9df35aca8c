package notification

import (
	"sync"

	"go.uber.org/zap"
)

// SentMail 已送出的郵件
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// LogMailer 以日誌代替實際寄信的 product.Mailer 實作
//
// 送出的郵件同時保留在記憶體中，可由 Sent() 取回。
type LogMailer struct {
	logger *zap.Logger

	mu   sync.Mutex
	sent []SentMail
}

// NewLogMailer 創建 LogMailer；logger 為 nil 時使用 zap.NewNop()
func NewLogMailer(logger *zap.Logger) *LogMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogMailer{logger: logger.With(zap.String("component", "log_mailer"))}
}

// Send 記錄郵件內容
func (m *LogMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentMail{To: to, Subject: subject, Body: body})
	m.mu.Unlock()

	m.logger.Info("email_sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// Sent 返回已送出郵件的副本
func (m *LogMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentMail(nil), m.sent...)
}
