package services

import (
	"context"
	"errors"
	"testing"

	"autoservice-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type recordingSender struct {
	params []*openapi.CreateMessageParams
	err    error
}

func (r *recordingSender) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	r.params = append(r.params, params)
	if r.err != nil {
		return nil, r.err
	}
	sid := "SM123"
	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

func shopNamed(name string) func() models.ShopInfo {
	return func() models.ShopInfo { return models.ShopInfo{Name: name} }
}

func TestNotifyStatusChange_SendsForCompleted(t *testing.T) {
	sender := &recordingSender{}
	notifier := newNotifyService(sender, "+15005550006", "66", shopNamed("Bang Na Garage"))

	err := notifier.NotifyStatusChange(context.Background(), models.RepairRequest{
		ID:          "14032025-093045",
		PhoneNumber: "081-234-5678",
		CarBrand:    "Toyota",
		CarModel:    "Camry",
		Status:      models.StatusCompleted,
	})
	require.NoError(t, err)

	require.Len(t, sender.params, 1)
	assert.Equal(t, "+66812345678", *sender.params[0].To)
	assert.Equal(t, "+15005550006", *sender.params[0].From)
	assert.Equal(t, "Bang Na Garage: your Toyota Camry (ticket 14032025-093045) is ready for pickup.", *sender.params[0].Body)
}

func TestNotifyStatusChange_SkipsPending(t *testing.T) {
	sender := &recordingSender{}
	notifier := newNotifyService(sender, "+15005550006", "66", nil)

	err := notifier.NotifyStatusChange(context.Background(), models.RepairRequest{
		PhoneNumber: "0812345678",
		Status:      models.StatusPending,
	})
	require.NoError(t, err)
	assert.Empty(t, sender.params)
}

func TestNotifyStatusChange_Errors(t *testing.T) {
	sender := &recordingSender{err: errors.New("21211 invalid number")}
	notifier := newNotifyService(sender, "+15005550006", "66", nil)

	err := notifier.NotifyStatusChange(context.Background(), models.RepairRequest{
		PhoneNumber: "0812345678",
		Status:      models.StatusCancelled,
	})
	assert.Error(t, err)

	err = notifier.NotifyStatusChange(context.Background(), models.RepairRequest{
		PhoneNumber: "n/a",
		Status:      models.StatusInProgress,
	})
	assert.Error(t, err)
}

func TestToE164(t *testing.T) {
	cases := map[string]string{
		"081-234-5678":     "+66812345678",
		"0812345678":       "+66812345678",
		"+44 20 7946 0958": "+442079460958",
		"812345678":        "+66812345678",
	}
	for input, want := range cases {
		got, ok := ToE164(input, "66")
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	_, ok := ToE164("12", "66")
	assert.False(t, ok)
}
