package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
	requestsigner "github.com/opensearch-project/opensearch-go/v4/signer/awsv2"

	"logex/internal/app/errors"
	"logex/internal/config"
	"logex/internal/config/logger"
)

type bucketAgg struct {
	Buckets []struct {
		Key string `json:"key"`
	} `json:"buckets"`
}

func (a bucketAgg) keys() []string {
	keys := make([]string, 0, len(a.Buckets))
	for _, b := range a.Buckets {
		keys = append(keys, b.Key)
	}

	return keys
}

type facetAggs struct {
	Environments bucketAgg `json:"profiles"`
	Applications bucketAgg `json:"applications"`
	Severities   bucketAgg `json:"severities"`
}

type openSearch struct {
	api     *opensearchapi.Client
	index   string
	window  string
	sizes   FacetSizes
	exclude *FacetFilter
	log     logger.Logger
}

// NewOpenSearch creates a Backend talking to an OpenSearch cluster, signing requests with AWS SigV4 when configured
func NewOpenSearch(ctx context.Context, cfg *config.Config, log logger.Logger) (Backend, error) {
	if err := cfg.RequireEndpoint(); err != nil {
		return nil, err
	}

	clientCfg := opensearch.Config{
		Addresses: []string{cfg.Backend.Endpoint},
	}

	if cfg.Backend.Sign {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Backend.Region))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToCreateAuth, err)
		}

		signer, err := requestsigner.NewSignerWithService(awsCfg, cfg.Backend.Service)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToCreateAuth, err)
		}

		clientCfg.Signer = signer
	}

	api, err := opensearchapi.NewClient(opensearchapi.Config{Client: clientCfg})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToCreateClient, err)
	}

	exclude, err := NewFacetFilter(cfg.Facets.Exclude)
	if err != nil {
		return nil, err
	}

	return &openSearch{
		api:    api,
		index:  cfg.Backend.Index,
		window: cfg.Backend.FacetWindow,
		sizes: FacetSizes{
			Environments: config.EnvironmentFacetSize,
			Applications: config.ApplicationFacetSize,
			Severities:   config.SeverityFacetSize,
		},
		exclude: exclude,
		log:     log.WithComponent("SEARCH"),
	}, nil
}

// ListFacets returns environments, applications and severities seen within the facet window
func (o *openSearch) ListFacets(ctx context.Context) (Facets, error) {
	resp, err := o.search(ctx, facetsBody(o.window, o.sizes))
	if err != nil {
		return Facets{}, err
	}

	var aggs facetAggs
	if len(resp.Aggregations) > 0 {
		if err := json.Unmarshal(resp.Aggregations, &aggs); err != nil {
			return Facets{}, fmt.Errorf("%w: %w", errors.ErrBackendResponse, err)
		}
	}

	facets := Facets{
		Environments: o.exclude.Apply(aggs.Environments.keys()),
		Applications: o.exclude.Apply(aggs.Applications.keys()),
		Severities:   aggs.Severities.keys(),
	}

	o.log.Debug().Msgf("Facets loaded: %d environments, %d applications, %d severities",
		len(facets.Environments), len(facets.Applications), len(facets.Severities))

	return facets, nil
}

// Search returns one page of records, newest first
func (o *openSearch) Search(ctx context.Context, params Params) (Result, error) {
	resp, err := o.search(ctx, searchBody(params))
	if err != nil {
		return Result{}, err
	}

	sources := make([]json.RawMessage, len(resp.Hits.Hits))
	for i, hit := range resp.Hits.Hits {
		sources[i] = hit.Source
	}

	records, dropped := decodeRecords(sources)
	if dropped > 0 {
		o.log.Debug().Msgf("Dropped %d malformed hits", dropped)
	}

	o.log.Debug().Msgf("Search env=%s from=%d size=%d: %d records of %d", params.Environment, params.From, params.Size, len(records), resp.Hits.Total.Value)

	return Result{Records: records, TotalHits: int64(resp.Hits.Total.Value)}, nil
}

func (o *openSearch) search(ctx context.Context, body object) (*opensearchapi.SearchResp, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBackendRequest, err)
	}

	resp, err := o.api.Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{o.index},
		Body:    bytes.NewReader(payload),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBackendRequest, err)
	}

	return resp, nil
}
