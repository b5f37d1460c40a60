package history

import "testing"

func TestNotifier_FanOut(t *testing.T) {
	n := NewNotifier()

	var a, b int
	n.Subscribe(func(Resource) { a++ })
	n.Subscribe(func(Resource) { b++ })

	n.Notify(ResourceSettings)

	if a != 1 || b != 1 {
		t.Errorf("subscriber calls = (%d, %d), want (1, 1)", a, b)
	}
}

func TestNotifier_CarriesResource(t *testing.T) {
	n := NewNotifier()

	var got Resource
	n.Subscribe(func(r Resource) { got = r })

	n.Notify(ResourceKeybindings)

	if got != ResourceKeybindings {
		t.Errorf("resource = %q, want %q", got, ResourceKeybindings)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := NewNotifier()

	calls := 0
	unsubscribe := n.Subscribe(func(Resource) { calls++ })

	n.Notify(ResourceSettings)
	unsubscribe()
	n.Notify(ResourceSettings)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Second cancellation is a no-op
	unsubscribe()
}

func TestNotifier_NoReplayForLateSubscribers(t *testing.T) {
	n := NewNotifier()

	n.Notify(ResourceSettings)

	called := false
	n.Subscribe(func(Resource) { called = true })

	if called {
		t.Error("late subscriber must not see past events")
	}
}

func TestNotifier_SubscribeFromCallback(t *testing.T) {
	n := NewNotifier()

	// Subscribing from within a callback must not deadlock.
	n.Subscribe(func(Resource) {
		n.Subscribe(func(Resource) {})
	})

	n.Notify(ResourceSettings)
}
