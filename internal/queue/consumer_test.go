package queue

import (
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestForwardRelaysDeliveries(t *testing.T) {
	msgs := make(chan amqp.Delivery, 1)
	out := make(chan tagged)
	done := make(chan struct{})
	defer close(done)

	go forward(ScoreRecordedQueue, msgs, out, done)

	msgs <- amqp.Delivery{Body: []byte(`{"userId":1}`)}
	select {
	case got := <-out:
		if got.kind != ScoreRecordedQueue {
			t.Fatalf("kind = %q, want %q", got.kind, ScoreRecordedQueue)
		}
		if string(got.d.Body) != `{"userId":1}` {
			t.Fatalf("body = %q", got.d.Body)
		}
	case <-time.After(time.Second):
		t.Fatal("delivery never forwarded")
	}
}

// A forwarder stuck on an unread delivery must exit when done closes,
// otherwise every reconnect strands a goroutine per queue.
func TestForwardReleasesOnDone(t *testing.T) {
	msgs := make(chan amqp.Delivery, 1)
	out := make(chan tagged) // never read, like a consume loop that returned
	done := make(chan struct{})

	exited := make(chan struct{})
	go func() {
		forward(PurchaseCompletedQueue, msgs, out, done)
		close(exited)
	}()

	msgs <- amqp.Delivery{Body: []byte("{}")}
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("forwarder still blocked after done closed")
	}
}
