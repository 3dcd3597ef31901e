package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// fcmMulticastSender delivers through FCM's batch endpoint: one call, one
// outcome per token.
type fcmMulticastSender struct {
	client *messaging.Client
}

// fcmPerDeviceSender delivers with one Send call per token. Slower, but it
// only needs the single-message endpoint.
type fcmPerDeviceSender struct {
	client *messaging.Client
}

// NewFCMSender wraps an FCM messaging client in the preferred delivery
// shape. The multicast batch endpoint is used unless perDevice forces the
// one-call-per-token fallback.
func NewFCMSender(client *messaging.Client, perDevice bool) Sender {
	if client == nil {
		return nil
	}
	if perDevice {
		return &fcmPerDeviceSender{client: client}
	}
	return &fcmMulticastSender{client: client}
}

func (s *fcmMulticastSender) SendBatch(ctx context.Context, tokens []string, msg PushMessage) ([]SendOutcome, error) {
	resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "booking_updates",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fcm multicast send failed: %w", err)
	}

	outcomes := make([]SendOutcome, 0, len(resp.Responses))
	for i, r := range resp.Responses {
		outcome := SendOutcome{Token: tokens[i], Success: r.Success, MessageID: r.MessageID}
		if !r.Success {
			outcome.ErrCode = classifyFCMError(r.Error)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (s *fcmPerDeviceSender) SendBatch(ctx context.Context, tokens []string, msg PushMessage) ([]SendOutcome, error) {
	outcomes := make([]SendOutcome, 0, len(tokens))
	for _, token := range tokens {
		id, err := s.client.Send(ctx, &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			outcomes = append(outcomes, SendOutcome{Token: token, ErrCode: classifyFCMError(err)})
			continue
		}
		outcomes = append(outcomes, SendOutcome{Token: token, Success: true, MessageID: id})
	}
	return outcomes, nil
}

// classifyFCMError maps SDK errors onto the dispatcher's failure codes.
func classifyFCMError(err error) string {
	switch {
	case err == nil:
		return ""
	case messaging.IsRegistrationTokenNotRegistered(err):
		return CodeUnregistered
	case messaging.IsInvalidArgument(err):
		return CodeInvalidToken
	default:
		return CodeInternal
	}
}
