package service

import (
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/pkg/circuit_breaker"

	"github.com/bibliotek/circulation-service/circulation/internal/repository"
)

// Rules are the circulation policy knobs. Defaults match long-standing
// library policy; overridable through config.
type Rules struct {
	LoanPeriodDays  int     `envconfig:"LOAN_PERIOD_DAYS" default:"14"`
	MaxOpenLoans    int     `envconfig:"MAX_SIMULTANEOUS_LOANS" default:"3"`
	MaxReservations int     `envconfig:"MAX_SIMULTANEOUS_RESERVATIONS" default:"5"`
	DailyFineRate   float64 `envconfig:"DAILY_FINE_RATE" default:"5.0"`
}

func (r Rules) loanPeriod() time.Duration {
	return time.Duration(r.LoanPeriodDays) * 24 * time.Hour
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	rules    Rules

	now func() time.Time
}

func NewService(repo repository.Repository, producer sarama.SyncProducer, rules Rules, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
		cb:       circuit_breaker.New(10, 5*time.Second, 0.5, 3),
		rules:    rules,
		now:      time.Now,
	}
}
