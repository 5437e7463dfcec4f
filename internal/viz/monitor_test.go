package viz

import (
	"context"
	"testing"
	"time"

	"github.com/san-kum/dbdm/vegas"
)

func TestFeedStatsForwards(t *testing.T) {
	ch := make(chan vegas.IterationStat, 1)
	FeedStats(context.Background(), ch)(vegas.IterationStat{Iteration: 3})

	if s := <-ch; s.Iteration != 3 {
		t.Errorf("forwarded stat iteration = %d, want 3", s.Iteration)
	}
}

func TestFeedStatsDropsAfterCancel(t *testing.T) {
	ch := make(chan vegas.IterationStat) // never received from
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	returned := make(chan struct{})
	go func() {
		FeedStats(ctx, ch)(vegas.IterationStat{Iteration: 1})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("callback should not block once the context is canceled")
	}
}

func TestMonitorRecordsOutcome(t *testing.T) {
	m := NewMonitor("flux", nil, nil)

	model, _ := m.Update(statMsg(vegas.IterationStat{Iteration: 1, Mean: 2.5}))
	model, cmd := model.(Monitor).Update(doneMsg(Outcome{Value: 3.0, Err: 0.1}))

	got := model.(Monitor)
	if cmd == nil {
		t.Error("completion should quit the program")
	}
	if got.Result() == nil || got.Result().Value != 3.0 {
		t.Errorf("outcome not recorded: %+v", got.Result())
	}
	if len(got.history) != 1 || got.history[0].Mean != 2.5 {
		t.Errorf("iteration history not recorded: %+v", got.history)
	}
}
