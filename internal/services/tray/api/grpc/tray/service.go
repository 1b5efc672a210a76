// Package tray exposes the dice tray over gRPC.
package tray

import (
	"context"
	"strings"

	dicetrayv1 "github.com/louisbranch/dicetray/api/gen/go/dicetray/v1"
	apperrors "github.com/louisbranch/dicetray/internal/platform/errors"
	"github.com/louisbranch/dicetray/internal/services/tray/domain"
	"golang.org/x/text/language"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Tray is the domain surface the gRPC service drives.
type Tray interface {
	ConfigurePatch(ctx context.Context, patch domain.SettingsPatch) (domain.State, error)
	Roll(ctx context.Context, forced []*int) (domain.RollOutcome, error)
	State(ctx context.Context) domain.State
	Subscribe() (<-chan domain.Result, func())
}

// Service implements the gRPC DiceTrayService.
type Service struct {
	dicetrayv1.UnimplementedDiceTrayServiceServer
	tray Tray
}

// NewService creates a gRPC tray service.
func NewService(tray Tray) *Service {
	return &Service{tray: tray}
}

// Configure applies the fields present in the request on top of the current
// settings.
func (s *Service) Configure(ctx context.Context, in *dicetrayv1.ConfigureRequest) (*dicetrayv1.ConfigureResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "configure request is required")
	}
	if s == nil || s.tray == nil {
		return nil, status.Error(codes.Internal, "tray is not configured")
	}

	state, err := s.tray.ConfigurePatch(ctx, patchFromProto(in))
	if err != nil {
		return nil, apperrors.HandleError(err, localeFromContext(ctx))
	}
	return &dicetrayv1.ConfigureResponse{State: stateToProto(state)}, nil
}

// Roll rolls every die and returns the settled outcome.
func (s *Service) Roll(ctx context.Context, in *dicetrayv1.RollRequest) (*dicetrayv1.RollResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "roll request is required")
	}
	if s == nil || s.tray == nil {
		return nil, status.Error(codes.Internal, "tray is not configured")
	}

	outcome, err := s.tray.Roll(ctx, forcedFromProto(in.GetForcedValues()))
	if err != nil {
		return nil, apperrors.HandleError(err, localeFromContext(ctx))
	}
	return &dicetrayv1.RollResponse{
		RollId:  outcome.ID,
		Result:  resultToProto(domain.Result{Total: outcome.Total, Values: outcome.Values}),
		Changed: outcome.Changed,
	}, nil
}

// GetState returns the tray snapshot.
func (s *Service) GetState(ctx context.Context, _ *dicetrayv1.GetStateRequest) (*dicetrayv1.GetStateResponse, error) {
	if s == nil || s.tray == nil {
		return nil, status.Error(codes.Internal, "tray is not configured")
	}
	return &dicetrayv1.GetStateResponse{State: stateToProto(s.tray.State(ctx))}, nil
}

// WatchResults sends the resting result, then every distinct result until the
// client goes away or the tray closes.
func (s *Service) WatchResults(_ *dicetrayv1.WatchResultsRequest, stream grpc.ServerStreamingServer[dicetrayv1.WatchResultsResponse]) error {
	if s == nil || s.tray == nil {
		return status.Error(codes.Internal, "tray is not configured")
	}
	ctx := stream.Context()
	results, cancel := s.tray.Subscribe()
	defer cancel()

	if err := stream.Send(&dicetrayv1.WatchResultsResponse{Result: resultToProto(s.tray.State(ctx).Result)}); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case result, ok := <-results:
			if !ok {
				return status.Error(codes.Unavailable, "tray closed")
			}
			if err := stream.Send(&dicetrayv1.WatchResultsResponse{Result: resultToProto(result)}); err != nil {
				return err
			}
		}
	}
}

// localeFromContext picks the preferred language from accept-language
// metadata.
func localeFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return apperrors.DefaultLocale
	}
	for _, header := range md.Get("accept-language") {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(tags) == 0 {
			continue
		}
		if locale := strings.TrimSpace(tags[0].String()); locale != "" {
			return locale
		}
	}
	return apperrors.DefaultLocale
}
