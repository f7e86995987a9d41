package conversation

import (
	"context"

	"github.com/google/uuid"

	"maleri_backend/internal/catalog"
	"maleri_backend/internal/email"
	"maleri_backend/internal/estimate"
	"maleri_backend/internal/speech"
	"maleri_backend/platform/apperr"
	"maleri_backend/platform/logger"
)

// Service orchestrates conversations: session persistence, the dialogue
// machine, optional speech-to-text and the summary mail on completion.
type Service struct {
	sessions    *SessionStore
	catalog     *catalog.Store
	cfg         estimate.PricingConfig
	transcriber speech.Transcriber       // nil when no whisper model is configured
	archive     *speech.RecordingArchive // nil when no object storage is configured
	sender      email.Sender             // nil when summary mail is disabled
	log         *logger.Logger
}

// NewService creates the conversation service. Transcriber, archive and
// sender are optional collaborators; nil disables the respective feature.
func NewService(sessions *SessionStore, catStore *catalog.Store, cfg estimate.PricingConfig, transcriber speech.Transcriber, archive *speech.RecordingArchive, sender email.Sender, log *logger.Logger) *Service {
	return &Service{
		sessions:    sessions,
		catalog:     catStore,
		cfg:         cfg,
		transcriber: transcriber,
		archive:     archive,
		sender:      sender,
		log:         log,
	}
}

// Start opens a new conversation and returns its greeting.
func (s *Service) Start(ctx context.Context) (*State, Reply, error) {
	st := NewState(uuid.New().String())
	reply := s.machine().Greeting(st)

	if err := s.sessions.Save(ctx, st); err != nil {
		return nil, Reply{}, err
	}

	s.log.WithSession(st.ID).Info("conversation started")
	return st, reply, nil
}

// HandleText feeds one text input to a conversation and persists the
// resulting state.
func (s *Service) HandleText(ctx context.Context, id, text string) (Reply, error) {
	st, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Reply{}, err
	}

	wasDone := st.Step == StepDone
	machine := s.machine()
	reply := machine.ProcessInput(st, text)

	if err := s.sessions.Save(ctx, st); err != nil {
		return Reply{}, err
	}

	if !wasDone && st.Step == StepDone {
		s.sendSummaryMail(ctx, machine, st)
	}
	return reply, nil
}

// HandleAudio transcribes a WAV recording and feeds the text to the
// conversation. The raw recording is archived best-effort when an archive
// is configured.
func (s *Service) HandleAudio(ctx context.Context, id string, audio []byte) (speech.Transcription, Reply, error) {
	if s.transcriber == nil {
		return speech.Transcription{}, Reply{}, apperr.Unavailable("taligenkänning är inte konfigurerad")
	}

	samples, err := speech.DecodeWAV(audio)
	if err != nil {
		return speech.Transcription{}, Reply{}, apperr.Wrap(apperr.KindBadRequest, "ogiltig ljudfil", err)
	}

	transcription, err := s.transcriber.Transcribe(ctx, samples)
	if err != nil {
		return speech.Transcription{}, Reply{}, apperr.Wrap(apperr.KindInternal, "taligenkänningen misslyckades", err)
	}
	s.log.Transcription(id, transcription.Text, transcription.Confidence, transcription.DurationSeconds)

	if s.archive != nil {
		if key, err := s.archive.Store(ctx, id, audio); err != nil {
			s.log.WithSession(id).Warn("recording archive failed", "error", err)
		} else {
			s.log.WithSession(id).Debug("recording archived", "key", key)
		}
	}

	// The transcription accompanies a turn error so the caller can show
	// what was heard.
	reply, err := s.HandleText(ctx, id, transcription.Text)
	if err != nil {
		return transcription, Reply{}, err
	}
	return transcription, reply, nil
}

// GetSummary returns the condensed view of a conversation.
func (s *Service) GetSummary(ctx context.Context, id string) (Summary, error) {
	st, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Summary{}, err
	}
	return s.machine().Summarize(st), nil
}

func (s *Service) machine() *Machine {
	return NewMachine(s.catalog.Current(), s.cfg)
}

// sendSummaryMail delivers the finished estimate to the office mailbox.
// Delivery failure is logged, never surfaced to the painter.
func (s *Service) sendSummaryMail(ctx context.Context, machine *Machine, st *State) {
	if s.sender == nil {
		return
	}

	summary := machine.Summarize(st)
	payload := email.EstimateSummary{
		ProjectName: summary.ProjectName,
		RoomName:    summary.RoomName,
		Errors:      summary.Errors,
		Subtotal:    summary.Totals.Subtotal,
		Markup:      summary.Totals.Markup,
		GrandTotal:  summary.Totals.GrandTotal,
	}
	for _, item := range summary.LineItems {
		payload.Lines = append(payload.Lines, email.SummaryLine{
			Name:      item.TaskName,
			Quantity:  item.Quantity,
			Unit:      unitLabel(item.Unit),
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	if err := s.sender.SendEstimateSummary(ctx, payload); err != nil {
		s.log.WithSession(st.ID).Error("summary mail failed", "error", err)
		return
	}
	s.log.WithSession(st.ID).Info("summary mail sent")
}
