package observability

import (
	"context"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for questionnaire lifecycle events.
// Serving them is left to the embedder; this package never opens a port.
type Metrics struct {
	SessionsStarted   prometheus.Counter
	SessionsCompleted prometheus.Counter
	QuestionsShown    *prometheus.CounterVec
	QuestionsSkipped  prometheus.Counter
	AnswersRejected   *prometheus.CounterVec
	AnswersRecorded   prometheus.Counter
}

// NewMetrics creates the collectors under the "questionnaire" namespace.
// They are not registered anywhere; call Register or MustRegister with the
// registry of your choice.
func NewMetrics() *Metrics {
	return &Metrics{
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "questionnaire",
			Name:      "sessions_started_total",
			Help:      "Total number of sessions started",
		}),
		SessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "questionnaire",
			Name:      "sessions_completed_total",
			Help:      "Total number of sessions that ran to completion",
		}),
		QuestionsShown: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "questionnaire",
			Name:      "questions_shown_total",
			Help:      "Total number of questions presented",
		}, []string{"kind"}),
		QuestionsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "questionnaire",
			Name:      "questions_skipped_total",
			Help:      "Total number of questions hidden by their condition",
		}),
		AnswersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "questionnaire",
			Name:      "answers_rejected_total",
			Help:      "Total number of answers rejected by validation",
		}, []string{"question_id"}),
		AnswersRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "questionnaire",
			Name:      "answers_recorded_total",
			Help:      "Total number of answers accepted and recorded",
		}),
	}
}

// Register registers every collector with reg, stopping at the first failure.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister registers every collector with reg and panics on failure.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.collectors()...)
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SessionsStarted,
		m.SessionsCompleted,
		m.QuestionsShown,
		m.QuestionsSkipped,
		m.AnswersRejected,
		m.AnswersRecorded,
	}
}

// Hooks exposes the collectors as lifecycle hooks, ready to pass to the
// engine. Combine with your own hooks via CombineHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionStart: func(ctx context.Context, e *domain.SessionEvent) {
			m.SessionsStarted.Inc()
		},
		OnQuestionShown: func(ctx context.Context, e *domain.QuestionEvent) {
			m.QuestionsShown.WithLabelValues(string(e.Kind)).Inc()
		},
		OnQuestionSkipped: func(ctx context.Context, e *domain.QuestionEvent) {
			m.QuestionsSkipped.Inc()
		},
		OnValidationFailed: func(ctx context.Context, e *domain.QuestionEvent) {
			m.AnswersRejected.WithLabelValues(e.QuestionID).Inc()
		},
		OnAnswerRecorded: func(ctx context.Context, e *domain.QuestionEvent) {
			m.AnswersRecorded.Inc()
		},
		OnSessionComplete: func(ctx context.Context, e *domain.SessionEvent) {
			m.SessionsCompleted.Inc()
		},
	}
}
