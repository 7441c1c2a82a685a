package progress

import "testing"

func TestTracker_SendsUpdatesOnChannel(t *testing.T) {
	ch := make(chan Update, 4)
	tr := New("req-1", ch)
	defer tr.Close()

	tr.Update(StageSegment, StatusRunning, "splitting")
	tr.Update(StageSegment, StatusFinished, "done")

	first := <-ch
	if first.RequestID != "req-1" || first.Stage != StageSegment || first.Status != StatusRunning {
		t.Errorf("unexpected first update: %+v", first)
	}
	if first.DurationMS != 0 {
		t.Errorf("first update for a stage should have zero duration, got %d", first.DurationMS)
	}

	second := <-ch
	if second.Status != StatusFinished {
		t.Errorf("expected second update to be finished, got %v", second.Status)
	}
}

func TestTracker_NilChannelDoesNotBlock(t *testing.T) {
	tr := New("req-2", nil)
	defer tr.Close()

	tr.Update(StageParse, StatusRunning, "parsing")
	tr.Update(StageParse, StatusFinished, "parsed")
}

func TestTracker_CloseStopsDelivery(t *testing.T) {
	ch := make(chan Update, 4)
	tr := New("req-3", ch)
	tr.Close()

	tr.Update(StageBuild, StatusRunning, "building")

	select {
	case u := <-ch:
		t.Errorf("expected no update after Close, got %+v", u)
	default:
	}
}
