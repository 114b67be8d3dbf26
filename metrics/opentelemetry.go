// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const exportInterval = 5 * time.Second

// DefaultMeter returns a meter exporting to the collector at collectorURL.
// Measurements are dropped if collectorURL is empty.
func DefaultMeter(ctx context.Context, collectorURL string) (api.Meter, error) {
	if collectorURL == "" {
		return noop.NewMeterProvider().Meter("dispute-node"), nil
	}

	collector, err := url.Parse(collectorURL)
	if err != nil {
		return nil, err
	}

	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(collector.Host)}
	if collector.Path != "" {
		opts = append(opts, otlpmetrichttp.WithURLPath(collector.Path))
	}
	if collector.Scheme == "http" {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(resource.NewSchemaless()),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(exportInterval))),
	)
	return provider.Meter("dispute-node"), nil
}
