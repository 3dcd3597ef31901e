package booking

import (
	"context"

	"bookify/services/notification"

	"go.uber.org/zap"
)

// notifyBusiness dispatches msg to the business's tokens and prunes the
// ones the provider reported dead. Runs strictly after the booking mutation
// has been persisted; whatever happens here is reported, never escalated.
func (s *DefaultBookingService) notifyBusiness(ctx context.Context, businessID string, msg notification.PushMessage) notification.Report {
	tokens, err := s.Businesses.GetTokens(businessID)
	if err != nil {
		s.logger().Warn("failed to load business tokens, skipping notification",
			zap.String("businessId", businessID),
			zap.Error(err))
		return notification.Report{Error: err.Error()}
	}

	report := s.Dispatcher.Dispatch(ctx, tokens, msg)
	if len(report.DeadTokens) > 0 {
		if err := s.Businesses.RemoveTokens(businessID, report.DeadTokens); err != nil {
			s.logger().Warn("failed to prune dead business tokens",
				zap.String("businessId", businessID),
				zap.Int("tokens", len(report.DeadTokens)),
				zap.Error(err))
		}
	}
	return report
}

// notifyClient is the client-side counterpart of notifyBusiness.
func (s *DefaultBookingService) notifyClient(ctx context.Context, clientID string, msg notification.PushMessage) notification.Report {
	tokens, err := s.Clients.GetTokens(clientID)
	if err != nil {
		s.logger().Warn("failed to load client tokens, skipping notification",
			zap.String("clientId", clientID),
			zap.Error(err))
		return notification.Report{Error: err.Error()}
	}

	report := s.Dispatcher.Dispatch(ctx, tokens, msg)
	if len(report.DeadTokens) > 0 {
		if err := s.Clients.RemoveTokens(clientID, report.DeadTokens); err != nil {
			s.logger().Warn("failed to prune dead client tokens",
				zap.String("clientId", clientID),
				zap.Int("tokens", len(report.DeadTokens)),
				zap.Error(err))
		}
	}
	return report
}
