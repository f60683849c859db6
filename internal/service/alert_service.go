package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/pkg/e"
	"safezone/pkg/validator"
)

const (
	NoValidContactMessage = "Nenhum contacto válido para enviar alerta"
	AllFailedMessage      = "Falha ao enviar alerta para todos os contactos"
	AlertSentMessage      = "Alerta enviado com sucesso"
	PartialSentMessage    = "Alerta enviado parcialmente"

	defaultSMSTimeout = 5 * time.Second
)

// AlertMessage renders the distress SMS sent to one contact.
func AlertMessage(contactName, username string) string {
	return fmt.Sprintf("%s, estou em perigo. Preciso da sua ajuda urgente!\n— %s", contactName, username)
}

type AlertService struct {
	contacts   ContactRepository
	sms        SMSSender
	logger     *slog.Logger
	smsTimeout time.Duration
}

func NewAlertService(contacts ContactRepository, sms SMSSender, logger *slog.Logger, smsTimeout time.Duration) *AlertService {
	if smsTimeout <= 0 {
		smsTimeout = defaultSMSTimeout
	}
	return &AlertService{
		contacts:   contacts,
		sms:        sms,
		logger:     logger,
		smsTimeout: smsTimeout,
	}
}

// SendAlert texts every requested contact the caller owns, one at a time.
// SMS failures are reported per contact; only a lookup failure aborts.
func (s *AlertService) SendAlert(ctx context.Context, who domain.Identity, req domain.SendAlertRequest) (*domain.AlertResult, error) {
	const op = "service.AlertService.SendAlert"

	if who.UserID == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidUserID)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	owned, err := s.contacts.FindContactsByUserID(ctx, who.UserID)
	if err != nil {
		s.logger.Error("contact lookup failed", slog.String("op", op), slog.String("user_id", who.UserID), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w: %w", op, e.ErrInternal, err)
	}

	valid, invalid := partitionContacts(req.ContactIDs, owned)
	if len(invalid) > 0 {
		s.logger.Warn("alert with unknown contacts",
			slog.String("user_id", who.UserID),
			slog.Int("unknown", len(invalid)),
		)
	}

	res := &domain.AlertResult{
		Contacts:          make([]domain.ContactDispatch, 0, len(valid)),
		FailedContacts:    []domain.ContactDispatch{},
		InvalidContactIDs: invalid,
	}
	if len(valid) == 0 {
		res.Message = NoValidContactMessage
		return res, nil
	}

	for _, c := range valid {
		d := domain.ContactDispatch{ID: c.ID.String(), Name: c.Name, Phone: c.Phone, Status: domain.DispatchSent}
		if err := s.send(ctx, c, who.Username); err != nil {
			d.Status = domain.DispatchFailed
			d.Error = err.Error()
			res.Failed++
			res.FailedContacts = append(res.FailedContacts, d)
			s.logger.Warn("alert sms failed",
				slog.String("user_id", who.UserID),
				slog.String("contact_id", d.ID),
				slog.Any("error", err),
			)
		} else {
			res.Sent++
		}
		res.Contacts = append(res.Contacts, d)
	}

	switch {
	case res.Sent == 0:
		res.Message = AllFailedMessage
	case res.Failed > 0:
		res.Success = true
		res.Message = PartialSentMessage
	default:
		res.Success = true
		res.Message = AlertSentMessage
	}

	s.logger.Info("alert dispatched",
		slog.String("user_id", who.UserID),
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *AlertService) send(ctx context.Context, c domain.Contact, username string) error {
	ctx, cancel := context.WithTimeout(ctx, s.smsTimeout)
	defer cancel()
	return s.sms.Send(ctx, c.Phone, AlertMessage(c.Name, username))
}

// partitionContacts keeps request order, collapses duplicate ids and splits
// them into owned contacts and unknown ids.
func partitionContacts(ids []string, owned []domain.Contact) ([]domain.Contact, []string) {
	byID := make(map[uuid.UUID]domain.Contact, len(owned))
	for _, c := range owned {
		byID[c.ID] = c
	}

	seen := make(map[string]struct{}, len(ids))
	valid := make([]domain.Contact, 0, len(ids))
	var invalid []string
	for _, raw := range ids {
		key := strings.ToLower(strings.TrimSpace(raw))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		id, err := uuid.Parse(key)
		if err != nil {
			invalid = append(invalid, raw)
			continue
		}
		c, ok := byID[id]
		if !ok {
			invalid = append(invalid, raw)
			continue
		}
		valid = append(valid, c)
	}
	return valid, invalid
}
