package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/internal/service"
	mock_service "safezone/internal/service/mocks"
	"safezone/pkg/e"
	"safezone/pkg/logger"
)

var caller = domain.Identity{UserID: "u1", Username: "Maria"}

func threeContacts() []domain.Contact {
	group := uuid.New()
	return []domain.Contact{
		{ID: uuid.New(), GroupID: group, GroupName: "Família", Name: "Ana", Phone: "+244900000001"},
		{ID: uuid.New(), GroupID: group, GroupName: "Família", Name: "Bruno", Phone: "+244900000002"},
		{ID: uuid.New(), GroupID: group, GroupName: "Família", Name: "Carla", Phone: "+244900000003"},
	}
}

func idsOf(cs []domain.Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID.String()
	}
	return out
}

func TestSendAlert_AllFail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	contacts := mock_service.NewMockContactRepository(ctrl)
	sms := mock_service.NewMockSMSSender(ctrl)

	owned := threeContacts()
	contacts.EXPECT().FindContactsByUserID(gomock.Any(), "u1").Return(owned, nil).Times(1)
	sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("provider down")).Times(3)

	svc := service.NewAlertService(contacts, sms, logger.Discard(), time.Second)

	res, err := svc.SendAlert(context.Background(), caller, domain.SendAlertRequest{ContactIDs: idsOf(owned)})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Success {
		t.Fatalf("expected overall failure")
	}
	if res.Sent != 0 || res.Failed != 3 || len(res.FailedContacts) != 3 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.FailedContacts[0].Error != "provider down" {
		t.Fatalf("error not captured: %+v", res.FailedContacts[0])
	}
}

func TestSendAlert_PartialFail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	contacts := mock_service.NewMockContactRepository(ctrl)
	sms := mock_service.NewMockSMSSender(ctrl)

	owned := threeContacts()
	contacts.EXPECT().FindContactsByUserID(gomock.Any(), "u1").Return(owned, nil)
	gomock.InOrder(
		sms.EXPECT().Send(gomock.Any(), owned[0].Phone, service.AlertMessage("Ana", "Maria")).Return(nil),
		sms.EXPECT().Send(gomock.Any(), owned[1].Phone, gomock.Any()).Return(errors.New("invalid number")),
		sms.EXPECT().Send(gomock.Any(), owned[2].Phone, gomock.Any()).Return(nil),
	)

	svc := service.NewAlertService(contacts, sms, logger.Discard(), time.Second)

	res, err := svc.SendAlert(context.Background(), caller, domain.SendAlertRequest{ContactIDs: idsOf(owned)})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected overall success")
	}
	if res.Sent != 2 || res.Failed != 1 || len(res.FailedContacts) != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.FailedContacts[0].ID != owned[1].ID.String() || res.FailedContacts[0].Status != domain.DispatchFailed {
		t.Fatalf("unexpected failed contact: %+v", res.FailedContacts[0])
	}
	if len(res.Contacts) != 3 {
		t.Fatalf("expected every contact reported, got %d", len(res.Contacts))
	}
}

func TestSendAlert_NoValidContacts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	contacts := mock_service.NewMockContactRepository(ctrl)
	sms := mock_service.NewMockSMSSender(ctrl)

	contacts.EXPECT().FindContactsByUserID(gomock.Any(), "u1").Return(threeContacts(), nil)
	sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewAlertService(contacts, sms, logger.Discard(), time.Second)

	foreign := []string{uuid.NewString(), uuid.NewString()}
	res, err := svc.SendAlert(context.Background(), caller, domain.SendAlertRequest{ContactIDs: foreign})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Success {
		t.Fatalf("expected overall failure")
	}
	if res.Message != service.NoValidContactMessage {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if len(res.InvalidContactIDs) != 2 {
		t.Fatalf("expected unknown ids reported, got %v", res.InvalidContactIDs)
	}
}

func TestSendAlert_DuplicateIDsSendOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	contacts := mock_service.NewMockContactRepository(ctrl)
	sms := mock_service.NewMockSMSSender(ctrl)

	owned := threeContacts()[:1]
	contacts.EXPECT().FindContactsByUserID(gomock.Any(), "u1").Return(owned, nil)
	sms.EXPECT().Send(gomock.Any(), owned[0].Phone, gomock.Any()).Return(nil).Times(1)

	svc := service.NewAlertService(contacts, sms, logger.Discard(), time.Second)

	id := owned[0].ID.String()
	res, err := svc.SendAlert(context.Background(), caller, domain.SendAlertRequest{ContactIDs: []string{id, id}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Success || res.Sent != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSendAlert_LookupErrorAborts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	contacts := mock_service.NewMockContactRepository(ctrl)
	sms := mock_service.NewMockSMSSender(ctrl)

	contacts.EXPECT().FindContactsByUserID(gomock.Any(), "u1").Return(nil, errors.New("db down"))
	sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewAlertService(contacts, sms, logger.Discard(), time.Second)

	_, err := svc.SendAlert(context.Background(), caller, domain.SendAlertRequest{ContactIDs: []string{uuid.NewString()}})
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSendAlert_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	contacts := mock_service.NewMockContactRepository(ctrl)
	sms := mock_service.NewMockSMSSender(ctrl)
	contacts.EXPECT().FindContactsByUserID(gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewAlertService(contacts, sms, logger.Discard(), time.Second)

	tooMany := make([]string, domain.MaxAlertContacts+1)
	for i := range tooMany {
		tooMany[i] = uuid.NewString()
	}

	cases := []domain.SendAlertRequest{
		{},
		{ContactIDs: []string{}},
		{ContactIDs: []string{"not-a-uuid"}},
		{ContactIDs: tooMany},
	}
	for i, req := range cases {
		if _, err := svc.SendAlert(context.Background(), caller, req); !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	if _, err := svc.SendAlert(context.Background(), domain.Identity{}, domain.SendAlertRequest{ContactIDs: []string{uuid.NewString()}}); !errors.Is(err, e.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}

func TestSendAlert_EachSendHasDeadline(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	contacts := mock_service.NewMockContactRepository(ctrl)
	sms := mock_service.NewMockSMSSender(ctrl)

	owned := threeContacts()[:1]
	contacts.EXPECT().FindContactsByUserID(gomock.Any(), "u1").Return(owned, nil)
	sms.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("expected per-send deadline")
			}
			return nil
		})

	svc := service.NewAlertService(contacts, sms, logger.Discard(), 2*time.Second)

	if _, err := svc.SendAlert(context.Background(), caller, domain.SendAlertRequest{ContactIDs: idsOf(owned)}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAlertMessage(t *testing.T) {
	got := service.AlertMessage("Ana", "Maria")
	want := "Ana, estou em perigo. Preciso da sua ajuda urgente!\n— Maria"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}
