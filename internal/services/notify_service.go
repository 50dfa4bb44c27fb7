package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"autoservice-backend/internal/config"
	"autoservice-backend/internal/models"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageSender interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// NotifyService texts customers when their ticket moves on.
type NotifyService struct {
	sender      messageSender
	fromNumber  string
	countryCode string
	shop        func() models.ShopInfo
}

func NewNotifyService(cfg *config.Config, shop func() models.ShopInfo) *NotifyService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.TwilioAccountSID,
		Password:   cfg.TwilioAuthToken,
		AccountSid: cfg.TwilioAccountSID,
	})
	return newNotifyService(client.Api, cfg.TwilioFromNumber, cfg.SMSCountryCode, shop)
}

func newNotifyService(sender messageSender, fromNumber, countryCode string, shop func() models.ShopInfo) *NotifyService {
	if shop == nil {
		shop = models.DefaultShopInfo
	}
	return &NotifyService{
		sender:      sender,
		fromNumber:  fromNumber,
		countryCode: countryCode,
		shop:        shop,
	}
}

// NotifyStatusChange sends an SMS for statuses the customer cares about and
// ignores the rest.
func (n *NotifyService) NotifyStatusChange(_ context.Context, request models.RepairRequest) error {
	body, ok := StatusMessage(n.shop().Name, request)
	if !ok {
		return nil
	}

	to, ok := ToE164(request.PhoneNumber, n.countryCode)
	if !ok {
		return fmt.Errorf("phone number %q cannot be dialled", request.PhoneNumber)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.fromNumber)
	params.SetBody(body)

	resp, err := n.sender.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("SMS sent for request %s, sid %s", request.ID, *resp.Sid)
	}
	return nil
}

// StatusMessage renders the customer text. It reports false for statuses
// that don't warrant a message.
func StatusMessage(shopName string, request models.RepairRequest) (string, bool) {
	var verb string
	switch request.Status {
	case models.StatusInProgress:
		verb = "is now being worked on"
	case models.StatusCompleted:
		verb = "is ready for pickup"
	case models.StatusCancelled:
		verb = "has been cancelled"
	default:
		return "", false
	}

	vehicle := strings.TrimSpace(request.CarBrand + " " + request.CarModel)
	return fmt.Sprintf("%s: your %s (ticket %s) %s.", shopName, vehicle, request.ID, verb), true
}

// ToE164 rewrites a local number ("081-234-5678") to "+66812345678". Numbers
// already starting with + keep their country code.
func ToE164(phone, countryCode string) (string, bool) {
	trimmed := strings.TrimSpace(phone)
	international := strings.HasPrefix(trimmed, "+")

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, trimmed)
	if len(digits) < 6 {
		return "", false
	}

	switch {
	case international:
		return "+" + digits, true
	case strings.HasPrefix(digits, "0"):
		return "+" + countryCode + strings.TrimLeft(digits, "0"), true
	default:
		return "+" + countryCode + digits, true
	}
}
