package practicesession_test

import (
	"testing"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		mode    practicesession.Mode
		trigger practicesession.Trigger
		last    bool
		want    practicesession.Effect
	}{
		{
			name:    "continuous submission advances after a delay",
			mode:    practicesession.ModeContinuous,
			trigger: practicesession.TriggerSubmitted,
			want:    practicesession.EffectAdvanceAfterDelay,
		},
		{
			name:    "continuous submission on the last question completes",
			mode:    practicesession.ModeContinuous,
			trigger: practicesession.TriggerSubmitted,
			last:    true,
			want:    practicesession.EffectComplete,
		},
		{
			name:    "paced submission shows the explanation",
			mode:    practicesession.ModePaced,
			trigger: practicesession.TriggerSubmitted,
			want:    practicesession.EffectShowExplanation,
		},
		{
			name:    "paced submission on the last question still shows the explanation",
			mode:    practicesession.ModePaced,
			trigger: practicesession.TriggerSubmitted,
			last:    true,
			want:    practicesession.EffectShowExplanation,
		},
		{
			name:    "continue advances",
			mode:    practicesession.ModePaced,
			trigger: practicesession.TriggerContinue,
			want:    practicesession.EffectAdvance,
		},
		{
			name:    "continue on the last question completes",
			mode:    practicesession.ModePaced,
			trigger: practicesession.TriggerContinue,
			last:    true,
			want:    practicesession.EffectComplete,
		},
		{
			name:    "forward after rewind works in continuous mode too",
			mode:    practicesession.ModeContinuous,
			trigger: practicesession.TriggerContinue,
			want:    practicesession.EffectAdvance,
		},
		{
			name:    "rewind onto an answered position shows the stored outcome",
			mode:    practicesession.ModeContinuous,
			trigger: practicesession.TriggerRewind,
			want:    practicesession.EffectShowStored,
		},
		{
			name:    "rewind shows the stored outcome in paced mode as well",
			mode:    practicesession.ModePaced,
			trigger: practicesession.TriggerRewind,
			want:    practicesession.EffectShowStored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := practicesession.Decide(tt.mode, tt.trigger, tt.last)
			if got != tt.want {
				t.Errorf("Decide(%v, %v, %v) = %v, want %v", tt.mode, tt.trigger, tt.last, got, tt.want)
			}
		})
	}
}
