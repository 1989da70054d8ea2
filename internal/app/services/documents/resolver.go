package documents

import (
	"context"
	"time"

	"carelink-service/internal/app/services/shared/fhirclient"
	"carelink-service/internal/observability/metrics"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ResolvedEntry is one resolved section entry. Raw keeps the upstream JSON so
// the entry survives a cache round trip; Resource is rehydrated from Raw after
// loading and is never serialized itself.
type ResolvedEntry struct {
	Reference    string                    `json:"reference"`
	SectionIndex int                       `json:"section_index"`
	SectionTitle string                    `json:"section_title,omitempty"`
	SectionCode  string                    `json:"section_code,omitempty"`
	Raw          json.RawMessage           `json:"raw"`
	Resource     fhir_dto.ClinicalResource `json:"-"`
}

// Rehydrate decodes Raw back into the typed resource after a cache load.
func (e *ResolvedEntry) Rehydrate() error {
	resource, err := fhir_dto.DecodeClinicalResource(e.Raw)
	if err != nil {
		return err
	}
	e.Resource = resource
	return nil
}

type resolver struct {
	Client  fhirclient.Client
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewResolver(client fhirclient.Client, m *metrics.Metrics, logger *zap.Logger) Resolver {
	return &resolver{
		Client:  client,
		Metrics: m,
		Log:     logger,
	}
}

// Resolve walks the composition's sections in document order and fetches
// every entry reference, entry by entry. A failing or unrecognizable entry is
// dropped and logged; one bad reference never fails the document. The output
// preserves section-then-entry order.
func (r *resolver) Resolve(ctx context.Context, composition *fhir_dto.Composition) ([]ResolvedEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	start := time.Now()

	resolved := []ResolvedEntry{}
	for sectionIndex := range composition.Section {
		section := &composition.Section[sectionIndex]
		for _, entry := range section.Entry {
			if entry.Reference == "" {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			raw, err := r.Client.Request(ctx, entry.Reference)
			if err != nil {
				r.dropEntry(requestID, entry.Reference, err)
				continue
			}
			resource, err := fhir_dto.DecodeClinicalResource(raw)
			if err != nil {
				r.dropEntry(requestID, entry.Reference, err)
				continue
			}

			resolved = append(resolved, ResolvedEntry{
				Reference:    entry.Reference,
				SectionIndex: sectionIndex,
				SectionTitle: section.Title,
				SectionCode:  section.SectionCode(),
				Raw:          raw,
				Resource:     resource,
			})
		}
	}

	if r.Metrics != nil {
		r.Metrics.ResolveDuration.Observe(time.Since(start).Seconds())
	}
	r.Log.Info("resolver.Resolve completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositionIDKey, composition.ID),
		zap.Int(constvars.LoggingEntryCountKey, len(resolved)),
	)
	return resolved, nil
}

func (r *resolver) dropEntry(requestID, reference string, err error) {
	if r.Metrics != nil {
		r.Metrics.ResolutionDropped.Inc()
	}
	r.Log.Warn("resolver.Resolve dropping unresolvable entry",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceKey, reference),
		zap.Error(err),
	)
}

// GroupByType partitions resolved entries by resource type, preserving
// resolution order within each type.
func GroupByType(entries []ResolvedEntry) map[string][]ResolvedEntry {
	grouped := map[string][]ResolvedEntry{}
	for _, entry := range entries {
		if entry.Resource == nil {
			continue
		}
		typeName := entry.Resource.TypeName()
		grouped[typeName] = append(grouped[typeName], entry)
	}
	return grouped
}
