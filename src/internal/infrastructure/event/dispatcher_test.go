package event_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/jackyeh168/ecommerce/src/internal/infrastructure/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ===========================
// Test doubles
// ===========================

// recordingHandler records every event it receives and appends its name to a
// shared order log.
type recordingHandler struct {
	name  string
	order *[]string
	calls []shared.Event
	err   error
}

func newRecordingHandler(name string, order *[]string) *recordingHandler {
	return &recordingHandler{name: name, order: order}
}

func (h *recordingHandler) Handle(e shared.Event) error {
	h.calls = append(h.calls, e)
	if h.order != nil {
		*h.order = append(*h.order, h.name)
	}
	return h.err
}

// MockEventHandler mock implementation of shared.EventHandler
type MockEventHandler struct {
	mock.Mock
}

func (m *MockEventHandler) Handle(e shared.Event) error {
	args := m.Called(e)
	return args.Error(0)
}

func mustEvent(t *testing.T, eventType string) shared.Event {
	t.Helper()
	e, err := shared.NewEvent(eventType, map[string]any{"id": "123"})
	require.NoError(t, err)
	return e
}

// ===========================
// Register
// ===========================

// Test 1: a new dispatcher has an empty registry
func TestNewDispatcher_EmptyRegistry(t *testing.T) {
	d := event.NewDispatcher()

	assert.Empty(t, d.EventHandlers())
	assert.False(t, d.HasEventType("ProductCreated"))
}

// Test 2: Register appends the handler at the tail
func TestDispatcher_Register_AppendsAtTail(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	h1 := newRecordingHandler("h1", nil)
	h2 := newRecordingHandler("h2", nil)
	require.NoError(t, d.Register("ProductCreated", h1))

	// Act
	err := d.Register("ProductCreated", h2)

	// Assert
	require.NoError(t, err)
	handlers, ok := d.Handlers("ProductCreated")
	require.True(t, ok)
	require.Len(t, handlers, 2)
	assert.Same(t, h1, handlers[0])
	assert.Same(t, h2, handlers[1])
}

// Test 3: registering the same handler twice produces two entries
func TestDispatcher_Register_SameHandlerTwice_TwoEntries(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	h := newRecordingHandler("h", nil)

	// Act
	require.NoError(t, d.Register("CustomerCreated", h))
	require.NoError(t, d.Register("CustomerCreated", h))
	err := d.Notify(mustEvent(t, "CustomerCreated"))

	// Assert
	require.NoError(t, err)
	handlers, _ := d.Handlers("CustomerCreated")
	require.Len(t, handlers, 2)
	assert.Same(t, h, handlers[0])
	assert.Same(t, h, handlers[1])
	assert.Len(t, h.calls, 2, "duplicate registration receives the event twice")
}

// Test 4: empty event type is rejected
func TestDispatcher_Register_EmptyEventType_ReturnsError(t *testing.T) {
	d := event.NewDispatcher()

	err := d.Register("", newRecordingHandler("h", nil))

	assert.ErrorIs(t, err, shared.ErrInvalidEventType)
	assert.Empty(t, d.EventHandlers())
}

type valueHandler struct{}

func (valueHandler) Handle(shared.Event) error { return nil }

// Test 5: nil and non-pointer handlers are rejected
func TestDispatcher_Register_InvalidHandler_ReturnsError(t *testing.T) {
	tests := []struct {
		name    string
		handler shared.EventHandler
	}{
		{"nil", nil},
		{"value type", valueHandler{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := event.NewDispatcher()

			err := d.Register("X", tt.handler)

			assert.ErrorIs(t, err, shared.ErrInvalidHandler)
			assert.False(t, d.HasEventType("X"), "failed registration must not create the key")
		})
	}
}

// ===========================
// Unregister
// ===========================

// Test 6: Unregister removes only the first occurrence and keeps order
func TestDispatcher_Unregister_RemovesFirstOccurrence(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	h1 := newRecordingHandler("h1", nil)
	h2 := newRecordingHandler("h2", nil)
	require.NoError(t, d.Register("X", h1))
	require.NoError(t, d.Register("X", h2))
	require.NoError(t, d.Register("X", h1))

	// Act
	d.Unregister("X", h1)

	// Assert
	handlers, ok := d.Handlers("X")
	require.True(t, ok)
	require.Len(t, handlers, 2)
	assert.Same(t, h2, handlers[0])
	assert.Same(t, h1, handlers[1])
}

// Test 7: scenario - unregistering the only handler keeps the key with zero handlers
func TestDispatcher_Unregister_LastHandler_KeyRemainsEmpty(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	h := newRecordingHandler("h", nil)
	require.NoError(t, d.Register("X", h))

	// Act
	d.Unregister("X", h)
	err := d.Notify(mustEvent(t, "X"))

	// Assert
	require.NoError(t, err)
	handlers, ok := d.Handlers("X")
	assert.True(t, ok, "key must remain present")
	assert.Len(t, handlers, 0)
	assert.True(t, d.HasEventType("X"))
	registry := d.EventHandlers()
	assert.Contains(t, registry, "X")
	assert.Len(t, registry["X"], 0)
	assert.Empty(t, h.calls, "unregistered handler must not be invoked")
}

// Test 8: unknown event type or unknown handler is a no-op
func TestDispatcher_Unregister_Unknown_NoOp(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	registered := newRecordingHandler("registered", nil)
	stranger := newRecordingHandler("stranger", nil)
	require.NoError(t, d.Register("X", registered))

	// Act
	d.Unregister("Y", registered)
	d.Unregister("X", stranger)
	d.Unregister("X", nil)

	// Assert
	handlers, _ := d.Handlers("X")
	assert.Len(t, handlers, 1)
	assert.False(t, d.HasEventType("Y"), "unregister must not create keys")
}

// Test 9: removal uses identity, not structural equality
func TestDispatcher_Unregister_DistinctInstanceWithSameState_NotRemoved(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	original := newRecordingHandler("same", nil)
	lookalike := newRecordingHandler("same", nil)
	require.NoError(t, d.Register("X", original))

	// Act
	d.Unregister("X", lookalike)

	// Assert
	handlers, _ := d.Handlers("X")
	require.Len(t, handlers, 1)
	assert.Same(t, original, handlers[0])
}

// Test 10: HandlerFunc adapters can be unregistered by the returned value
func TestDispatcher_Unregister_HandlerFunc(t *testing.T) {
	d := event.NewDispatcher()
	calls := 0
	h := shared.HandlerFunc(func(shared.Event) error { calls++; return nil })
	require.NoError(t, d.Register("X", h))

	d.Unregister("X", h)
	require.NoError(t, d.Notify(mustEvent(t, "X")))

	assert.Equal(t, 0, calls)
}

// ===========================
// UnregisterAll
// ===========================

// Test 11: scenario - UnregisterAll removes keys entirely
func TestDispatcher_UnregisterAll_RemovesEveryKey(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	h := newRecordingHandler("h", nil)
	require.NoError(t, d.Register("A", h))
	require.NoError(t, d.Register("B", h))
	d.Unregister("B", h) // B is present with zero handlers

	// Act
	d.UnregisterAll()

	// Assert
	handlers, ok := d.Handlers("A")
	assert.False(t, ok, "A must be absent, not present-and-empty")
	assert.Nil(t, handlers)
	assert.False(t, d.HasEventType("B"))
	assert.Empty(t, d.EventHandlers())
}

// Test 12: UnregisterAll is idempotent
func TestDispatcher_UnregisterAll_Idempotent(t *testing.T) {
	d := event.NewDispatcher()
	require.NoError(t, d.Register("A", newRecordingHandler("h", nil)))

	d.UnregisterAll()
	once := d.EventHandlers()
	d.UnregisterAll()
	twice := d.EventHandlers()

	assert.Equal(t, once, twice)
	assert.Empty(t, twice)
}

// Test 13: the dispatcher stays usable after UnregisterAll
func TestDispatcher_UnregisterAll_ThenRegister(t *testing.T) {
	d := event.NewDispatcher()
	h := newRecordingHandler("h", nil)
	require.NoError(t, d.Register("A", h))
	d.UnregisterAll()

	require.NoError(t, d.Register("A", h))
	require.NoError(t, d.Notify(mustEvent(t, "A")))

	assert.Len(t, h.calls, 1)
}

// ===========================
// Notify
// ===========================

// Test 14: scenario - a single handler receives the event once
func TestDispatcher_Notify_ProductCreated_InvokesHandlerOnce(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	h := new(MockEventHandler)
	require.NoError(t, d.Register("ProductCreated", h))

	handlers, _ := d.Handlers("ProductCreated")
	require.Len(t, handlers, 1)
	assert.Same(t, h, handlers[0])

	e := mustEvent(t, "ProductCreated")
	h.On("Handle", e).Return(nil).Once()

	// Act
	err := d.Notify(e)

	// Assert
	require.NoError(t, err)
	h.AssertExpectations(t)
	h.AssertNumberOfCalls(t, "Handle", 1)
}

// Test 15: scenario - handlers run in registration order
func TestDispatcher_Notify_InvokesInRegistrationOrder(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	var order []string
	h1 := newRecordingHandler("h1", &order)
	h2 := newRecordingHandler("h2", &order)
	other := newRecordingHandler("other", &order)
	require.NoError(t, d.Register("CustomerCreated", h1))
	require.NoError(t, d.Register("CustomerCreated", h2))
	require.NoError(t, d.Register("CustomerAddressChanged", other))

	// Act
	err := d.Notify(mustEvent(t, "CustomerCreated"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, order)
	assert.Empty(t, other.calls, "handlers of other event types are not invoked")
}

// Test 16: all handlers receive the same event
func TestDispatcher_Notify_PassesSameEventToAllHandlers(t *testing.T) {
	d := event.NewDispatcher()
	h1 := newRecordingHandler("h1", nil)
	h2 := newRecordingHandler("h2", nil)
	require.NoError(t, d.Register("X", h1))
	require.NoError(t, d.Register("X", h2))
	e := mustEvent(t, "X")

	require.NoError(t, d.Notify(e))

	require.Len(t, h1.calls, 1)
	require.Len(t, h2.calls, 1)
	assert.Equal(t, e.EventID(), h1.calls[0].EventID())
	assert.Equal(t, e.EventID(), h2.calls[0].EventID())
	assert.Equal(t, e.Payload(), h2.calls[0].Payload())
}

// Test 17: notifying an unregistered type is a no-op
func TestDispatcher_Notify_UnregisteredType_NoOp(t *testing.T) {
	d := event.NewDispatcher()

	err := d.Notify(mustEvent(t, "Unknown"))

	assert.NoError(t, err)
	assert.False(t, d.HasEventType("Unknown"), "notify never mutates the registry")
}

// Test 18: repeated notify keeps the same order every time
func TestDispatcher_Notify_OrderStableAcrossCalls(t *testing.T) {
	d := event.NewDispatcher()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, d.Register("X", newRecordingHandler(name, &order)))
	}

	require.NoError(t, d.Notify(mustEvent(t, "X")))
	require.NoError(t, d.Notify(mustEvent(t, "X")))

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, order)
}

// Test 19: a failing handler stops the fan-out and the error is returned
func TestDispatcher_Notify_HandlerError_StopsFanOut(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.DebugLevel)
	d := event.NewDispatcher(event.WithLogger(zap.New(core)))

	boom := errors.New("smtp unavailable")
	var order []string
	first := newRecordingHandler("first", &order)
	failing := newRecordingHandler("failing", &order)
	failing.err = boom
	last := newRecordingHandler("last", &order)
	require.NoError(t, d.Register("ProductCreated", first))
	require.NoError(t, d.Register("ProductCreated", failing))
	require.NoError(t, d.Register("ProductCreated", last))

	// Act
	err := d.Notify(mustEvent(t, "ProductCreated"))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrHandlerFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "failing"}, order)
	assert.Empty(t, last.calls)

	failures := logs.FilterMessage("event_handler_failed")
	require.Equal(t, 1, failures.Len())
	fields := failures.All()[0].ContextMap()
	assert.Equal(t, "ProductCreated", fields["event_type"])
	assert.Equal(t, int64(1), fields["position"])
	assert.Equal(t, int64(1), fields["skipped"])
}

// Test 20: panics propagate and abort the remaining handlers
func TestDispatcher_Notify_HandlerPanic_Propagates(t *testing.T) {
	d := event.NewDispatcher()
	last := newRecordingHandler("last", nil)
	require.NoError(t, d.Register("X", shared.HandlerFunc(func(shared.Event) error {
		panic("handler exploded")
	})))
	require.NoError(t, d.Register("X", last))

	assert.PanicsWithValue(t, "handler exploded", func() {
		_ = d.Notify(mustEvent(t, "X"))
	})
	assert.Empty(t, last.calls)
}

// Test 21: registry changes made from inside a handler apply to later notifications only
func TestDispatcher_Notify_ReentrantRegistration_UsesSnapshot(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	var order []string
	late := newRecordingHandler("late", &order)
	second := newRecordingHandler("second", &order)

	var self shared.EventHandler
	self = shared.HandlerFunc(func(shared.Event) error {
		order = append(order, "self")
		d.Unregister("X", self)
		return d.Register("X", late)
	})
	require.NoError(t, d.Register("X", self))
	require.NoError(t, d.Register("X", second))

	// Act
	require.NoError(t, d.Notify(mustEvent(t, "X")))
	first := append([]string(nil), order...)
	order = order[:0]
	require.NoError(t, d.Notify(mustEvent(t, "X")))

	// Assert
	assert.Equal(t, []string{"self", "second"}, first, "in-flight notify uses the snapshot taken at start")
	assert.Equal(t, []string{"second", "late"}, order)
}

// ===========================
// Registry accessor
// ===========================

// Test 22: EventHandlers reflects live state and returns a copy
func TestDispatcher_EventHandlers_LiveCopy(t *testing.T) {
	// Arrange
	d := event.NewDispatcher()
	h1 := newRecordingHandler("h1", nil)
	h2 := newRecordingHandler("h2", nil)
	require.NoError(t, d.Register("X", h1))

	// Act
	before := d.EventHandlers()
	before["X"][0] = h2
	before["Y"] = []shared.EventHandler{h2}
	require.NoError(t, d.Register("X", h2))
	after := d.EventHandlers()

	// Assert
	assert.NotContains(t, after, "Y", "mutating the returned map does not touch the registry")
	require.Len(t, after["X"], 2)
	assert.Same(t, h1, after["X"][0])
	assert.Same(t, h2, after["X"][1])
}

// Test 23: concurrent register and notify are serialized
func TestDispatcher_ConcurrentRegisterAndNotify(t *testing.T) {
	d := event.NewDispatcher()
	const goroutines = 50

	var mu sync.Mutex
	calls := 0
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = d.Register("X", shared.HandlerFunc(func(shared.Event) error {
				mu.Lock()
				calls++
				mu.Unlock()
				return nil
			}))
		}()
		go func() {
			defer wg.Done()
			_ = d.Notify(shared.MustNewEvent("X", nil))
		}()
	}
	wg.Wait()

	handlers, ok := d.Handlers("X")
	assert.True(t, ok)
	assert.Len(t, handlers, goroutines)

	mu.Lock()
	before := calls
	mu.Unlock()
	require.NoError(t, d.Notify(shared.MustNewEvent("X", nil)))
	assert.Equal(t, before+goroutines, calls)
}
