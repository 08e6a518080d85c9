package worker

import (
	"context"
	"log/slog"
	"time"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/infra"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/daykey"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/pkg/metrics"
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var (
	ErrRequestNotFound  = errs.New("creation request not found")
	ErrSafetyBlocked    = errs.New("image blocked by safety check")
	ErrProviderRejected = errs.New("provider rejected the request")

	errAlreadyTerminal = errs.New("request already terminal")
	errCheckpointLost  = errs.New("image checkpoint not persisted")
)

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type SafetyChecker interface {
	Check(ctx context.Context, prompt, imageURL string) (creation.Verdict, error)
}

// Pipeline executes one creation request. Every step re-reads durable state,
// so a redelivered or resumed job picks up after the last checkpoint.
type Pipeline struct {
	uow       shared.UnitOfWork
	recovery  *commands.Recovery
	generator Generator
	safety    SafetyChecker
	retryable func(error) bool
	gate      *rate.Limiter
	clock     clock.Clock
	metrics   *metrics.Metrics
	loc       *time.Location
}

func NewPipeline(
	uow shared.UnitOfWork,
	recovery *commands.Recovery,
	generator Generator,
	safety SafetyChecker,
	retryable func(error) bool,
	gate *rate.Limiter,
	clk clock.Clock,
	m *metrics.Metrics,
	cfg config.Config,
) *Pipeline {
	return &Pipeline{
		uow:       uow,
		recovery:  recovery,
		generator: generator,
		safety:    safety,
		retryable: retryable,
		gate:      gate,
		clock:     clk,
		metrics:   m,
		loc:       cfg.Slot.ServiceLocation(),
	}
}

func (p *Pipeline) Process(ctx context.Context, requestID uuid.UUID) Outcome {
	req, err := p.uow.CommandReads().RequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return Terminal(ErrRequestNotFound)
		}
		return Retry(err)
	}

	if req.Status().IsTerminal() {
		return Success()
	}
	// Finalize committed the dish but the status write was lost.
	if req.HasDish() {
		return p.repairDone(ctx, req.ID())
	}

	prompt := req.GenerationPrompt()
	if prompt == "" {
		return p.fail(ctx, req, creation.FailureEmptyPrompt, creation.ErrEmptyPrompt)
	}

	imageURL, err := p.ensureImage(ctx, req, prompt)
	if err != nil {
		return p.classify(ctx, req, err)
	}

	verdict, err := p.checkSafety(ctx, req, prompt, imageURL)
	if err != nil {
		return p.classify(ctx, req, err)
	}
	p.audit(ctx, req.ID(), verdict, imageURL)
	if !verdict.Decision.IsAllowed() {
		return p.fail(ctx, req, creation.FailureSafetyBlocked, ErrSafetyBlocked)
	}

	return p.finalize(ctx, req.ID(), imageURL)
}

// Exhaust finalizes a request whose retries ran out: FAILED plus refund.
func (p *Pipeline) Exhaust(ctx context.Context, requestID uuid.UUID, cause error) error {
	req, err := p.uow.CommandReads().RequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if req.Status().IsTerminal() {
		return nil
	}
	if req.HasDish() {
		return p.repairDoneTx(ctx, requestID)
	}
	slog.WarnContext(ctx, "retries exhausted", "request_id", requestID, "cause", errString(cause))
	_, err = p.failTx(ctx, req, creation.FailureRetriesExhausted)
	return err
}

func (p *Pipeline) ensureImage(ctx context.Context, req *creation.Request, prompt string) (string, error) {
	if req.HasImage() {
		return *req.ImageURL(), nil
	}
	if err := p.setStatus(ctx, req.ID(), creation.StatusGenerating); err != nil {
		return "", err
	}
	if err := p.gate.Wait(ctx); err != nil {
		return "", err
	}

	start := p.clock.Now()
	imageURL, err := p.generator.Generate(ctx, prompt)
	p.metrics.ObserveStage("generation", p.clock.Now().Sub(start).Seconds())
	if err != nil {
		return "", err
	}

	var saved bool
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		saved, err = tx.Requests().SaveImage(ctx, tx.DB(), req.ID(), imageURL)
		return err
	})
	if err != nil {
		return "", err
	}
	if saved {
		return imageURL, nil
	}

	// Lost the checkpoint race or the request went terminal meanwhile.
	cur, err := p.uow.CommandReads().RequestByID(ctx, req.ID())
	if err != nil {
		return "", err
	}
	if cur.Status().IsTerminal() {
		return "", errAlreadyTerminal
	}
	if cur.HasImage() {
		return *cur.ImageURL(), nil
	}
	return "", errCheckpointLost
}

func (p *Pipeline) checkSafety(ctx context.Context, req *creation.Request, prompt, imageURL string) (creation.Verdict, error) {
	if err := p.setStatus(ctx, req.ID(), creation.StatusSafety); err != nil {
		return creation.Verdict{}, err
	}
	if err := p.gate.Wait(ctx); err != nil {
		return creation.Verdict{}, err
	}
	start := p.clock.Now()
	verdict, err := p.safety.Check(ctx, prompt, imageURL)
	p.metrics.ObserveStage("safety", p.clock.Now().Sub(start).Seconds())
	return verdict, err
}

// audit is best effort; a lost audit row never fails the job.
func (p *Pipeline) audit(ctx context.Context, requestID uuid.UUID, verdict creation.Verdict, imageURL string) {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.SafetyAudits().Record(ctx, tx.DB(), requestID, verdict.Decision, verdict.Reason, imageURL)
	})
	if err != nil {
		slog.WarnContext(ctx, "safety audit write failed", "request_id", requestID, "error", err)
	}
}

// finalize writes the dish, its day score and DONE in one transaction.
func (p *Pipeline) finalize(ctx context.Context, requestID uuid.UUID, imageURL string) Outcome {
	start := p.clock.Now()
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			return err
		}
		if req.Status().IsTerminal() {
			return nil
		}
		if req.HasDish() {
			_, err := tx.Requests().RepairDone(ctx, tx.DB(), requestID)
			return err
		}

		now := p.clock.Now()
		dish := creation.NewDish(req, imageURL, daykey.For(now, p.loc), now)
		if err := tx.Dishes().Create(ctx, tx.DB(), dish); err != nil {
			return err
		}
		ok, err := tx.Requests().Complete(ctx, tx.DB(), requestID, dish.ID, imageURL)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Wrap(errAlreadyTerminal, "complete matched no rows")
		}
		return nil
	})
	p.metrics.ObserveStage("finalize", p.clock.Now().Sub(start).Seconds())
	if err != nil {
		return Retry(err)
	}
	slog.InfoContext(ctx, "creation done", "request_id", requestID)
	return Success()
}

func (p *Pipeline) repairDone(ctx context.Context, requestID uuid.UUID) Outcome {
	if err := p.repairDoneTx(ctx, requestID); err != nil {
		return Retry(err)
	}
	return Success()
}

func (p *Pipeline) repairDoneTx(ctx context.Context, requestID uuid.UUID) error {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Requests().RepairDone(ctx, tx.DB(), requestID)
		return err
	})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "repaired done status", "request_id", requestID)
	return nil
}

func (p *Pipeline) classify(ctx context.Context, req *creation.Request, err error) Outcome {
	if errs.Is(err, errAlreadyTerminal) {
		return Success()
	}
	if ctx.Err() != nil || p.retryable(err) {
		return Retry(err)
	}
	return p.fail(ctx, req, creation.FailureProviderRejected, errs.Mark(err, ErrProviderRejected))
}

// fail records FAILED and refunds. If that write fails the job retries and
// the step runs again.
func (p *Pipeline) fail(ctx context.Context, req *creation.Request, code string, cause error) Outcome {
	applied, err := p.failTx(ctx, req, code)
	if err != nil {
		return Retry(err)
	}
	if !applied {
		// Another delivery finished the request; its outcome stands.
		slog.InfoContext(ctx, "failure skipped, request already settled", "request_id", req.ID(), "failure_code", code)
		return Success()
	}
	slog.InfoContext(ctx, "creation failed", "request_id", req.ID(), "failure_code", code, "cause", errString(cause))
	return Terminal(cause)
}

// Request row first, then reservation and counter. The refund only follows a
// FAILED write that applied; a DONE request or one holding a dish keeps its slot.
func (p *Pipeline) failTx(ctx context.Context, req *creation.Request, code string) (bool, error) {
	var applied bool
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Requests().Fail(ctx, tx.DB(), req.ID(), code)
		if err != nil {
			return err
		}
		applied = ok
		if !ok {
			return nil
		}
		_, _, err = p.recovery.MarkFailedTx(ctx, tx, req.ReservationID())
		return err
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func (p *Pipeline) setStatus(ctx context.Context, id uuid.UUID, status creation.Status) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Requests().UpdateStatus(ctx, tx.DB(), id, status)
		return err
	})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
