package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

const showtimeIDKey = attribute.Key("showtime.id")

type bookingMetrics struct {
	created   otelmetric.Int64Counter
	cancelled otelmetric.Int64Counter
	rejected  otelmetric.Int64Counter
}

func newBookingMetrics(provider otelmetric.MeterProvider) (*bookingMetrics, error) {
	meter := provider.Meter(serviceName)

	created, err := meter.Int64Counter("bookings.created",
		otelmetric.WithDescription("Bookings created"),
		otelmetric.WithUnit("{booking}"))
	if err != nil {
		return nil, err
	}

	cancelled, err := meter.Int64Counter("bookings.cancelled",
		otelmetric.WithDescription("Bookings cancelled"),
		otelmetric.WithUnit("{booking}"))
	if err != nil {
		return nil, err
	}

	rejected, err := meter.Int64Counter("bookings.rejected",
		otelmetric.WithDescription("Booking requests rejected for lack of seats"),
		otelmetric.WithUnit("{booking}"))
	if err != nil {
		return nil, err
	}

	return &bookingMetrics{
		created:   created,
		cancelled: cancelled,
		rejected:  rejected,
	}, nil
}

func showtimeAttr(showtimeID int) otelmetric.AddOption {
	return otelmetric.WithAttributes(showtimeIDKey.Int(showtimeID))
}

func (m *bookingMetrics) bookingCreated(ctx context.Context, showtimeID int) {
	if m == nil {
		return
	}
	m.created.Add(ctx, 1, showtimeAttr(showtimeID))
}

func (m *bookingMetrics) bookingCancelled(ctx context.Context, showtimeID int) {
	if m == nil {
		return
	}
	m.cancelled.Add(ctx, 1, showtimeAttr(showtimeID))
}

func (m *bookingMetrics) bookingRejected(ctx context.Context, showtimeID int) {
	if m == nil {
		return
	}
	m.rejected.Add(ctx, 1, showtimeAttr(showtimeID))
}
