// Package qdrant provides a vector index backed by a Qdrant collection
// over gRPC.
package qdrant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	qdrantclient "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

var _ domain.VectorIndex = (*Index)(nil)

// Payload keys mirror the catalog column names so a stored point can be
// mapped straight back to a Course.
const (
	payloadCode        = "course code"
	payloadDescription = "course description"
	payloadSemester    = "semester taught"
	payloadInstructor  = "taught by"
)

// Config contains connection details for a Qdrant collection.
type Config struct {
	Host       string
	Port       int
	Collection string
	// Distance is "cosine" or "euclid"; defaults to cosine, which is
	// what nomic-embed-text vectors are tuned for.
	Distance string
}

// Index is a vector index stored in a single Qdrant collection.
type Index struct {
	conn        *grpc.ClientConn
	collections qdrantclient.CollectionsClient
	points      qdrantclient.PointsClient
	collection  string
	distance    qdrantclient.Distance
	dimension   int
}

// New connects to a Qdrant server. The collection itself is created
// lazily by Init once the vector dimension is known.
func New(cfg Config) (*Index, error) {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 6334
	}
	if cfg.Collection == "" {
		return nil, fmt.Errorf("qdrant collection name required")
	}
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to qdrant at %s: %w", addr, err)
	}
	distance := qdrantclient.Distance_Cosine
	if strings.EqualFold(cfg.Distance, "euclid") {
		distance = qdrantclient.Distance_Euclid
	}
	return &Index{
		conn:        conn,
		collections: qdrantclient.NewCollectionsClient(conn),
		points:      qdrantclient.NewPointsClient(conn),
		collection:  cfg.Collection,
		distance:    distance,
	}, nil
}

// Init creates the collection for vectors of the given dimension if it
// does not exist yet. An existing collection is left untouched so
// re-ingestion overwrites points instead of dropping history.
func (x *Index) Init(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	x.dimension = dimension

	list, err := x.collections.List(ctx, &qdrantclient.ListCollectionsRequest{})
	if err != nil {
		return fmt.Errorf("%w: list qdrant collections: %v", domain.ErrServiceUnavailable, err)
	}
	for _, col := range list.GetCollections() {
		if col.GetName() == x.collection {
			return nil
		}
	}

	_, err = x.collections.Create(ctx, &qdrantclient.CreateCollection{
		CollectionName: x.collection,
		VectorsConfig: &qdrantclient.VectorsConfig{
			Config: &qdrantclient.VectorsConfig_Params{
				Params: &qdrantclient.VectorParams{
					Size:     uint64(dimension),
					Distance: x.distance,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: create collection %q: %v", domain.ErrServiceUnavailable, x.collection, err)
	}
	return nil
}

// Upsert writes one point keyed by the course identifier. The point ID
// is derived deterministically from the id, so re-ingesting the same
// catalog replaces vectors instead of duplicating them.
func (x *Index) Upsert(ctx context.Context, id string, vector []float32, course domain.Course) error {
	if x.dimension != 0 && len(vector) != x.dimension {
		return fmt.Errorf("%w: got %d, collection %q expects %d",
			domain.ErrSchemaMismatch, len(vector), x.collection, x.dimension)
	}

	wait := true
	point := &qdrantclient.PointStruct{
		Id: &qdrantclient.PointId{
			PointIdOptions: &qdrantclient.PointId_Uuid{Uuid: pointID(id)},
		},
		Vectors: &qdrantclient.Vectors{
			VectorsOptions: &qdrantclient.Vectors_Vector{
				Vector: &qdrantclient.Vector{Data: vector},
			},
		},
		Payload: map[string]*qdrantclient.Value{
			payloadCode:        stringValue(course.Code),
			payloadDescription: stringValue(course.Description),
			payloadSemester:    stringValue(course.Semester),
			payloadInstructor:  stringValue(course.Instructor),
		},
	}
	_, err := x.points.Upsert(ctx, &qdrantclient.UpsertPoints{
		CollectionName: x.collection,
		Wait:           &wait,
		Points:         []*qdrantclient.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("%w: upsert point %q: %v", domain.ErrServiceUnavailable, id, err)
	}
	return nil
}

// Search returns up to k matches ordered by descending similarity.
// Qdrant already reports cosine results as similarity scores, highest
// first, so the order is passed through unchanged.
func (x *Index) Search(ctx context.Context, vector []float32, k int) ([]domain.CourseMatch, error) {
	if k <= 0 {
		k = 1
	}
	resp, err := x.points.Search(ctx, &qdrantclient.SearchPoints{
		CollectionName: x.collection,
		Vector:         vector,
		Limit:          uint64(k),
		WithPayload: &qdrantclient.WithPayloadSelector{
			SelectorOptions: &qdrantclient.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: qdrant search: %v", domain.ErrServiceUnavailable, err)
	}

	matches := make([]domain.CourseMatch, 0, len(resp.GetResult()))
	for _, point := range resp.GetResult() {
		matches = append(matches, domain.CourseMatch{
			Course: courseFromPayload(point.GetPayload()),
			Score:  point.GetScore(),
		})
	}
	return matches, nil
}

// Count reports the number of points in the collection.
func (x *Index) Count(ctx context.Context) (int, error) {
	exact := true
	resp, err := x.points.Count(ctx, &qdrantclient.CountPoints{
		CollectionName: x.collection,
		Exact:          &exact,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: qdrant count: %v", domain.ErrServiceUnavailable, err)
	}
	return int(resp.GetResult().GetCount()), nil
}

// Close closes the gRPC connection.
func (x *Index) Close() error { return x.conn.Close() }

// pointID maps a course identifier to a stable UUID, since Qdrant point
// IDs must be UUIDs or integers.
func pointID(id string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(id)).String()
}

func stringValue(s string) *qdrantclient.Value {
	return &qdrantclient.Value{Kind: &qdrantclient.Value_StringValue{StringValue: s}}
}

func courseFromPayload(payload map[string]*qdrantclient.Value) domain.Course {
	get := func(key string) string {
		if v, ok := payload[key]; ok {
			return v.GetStringValue()
		}
		return ""
	}
	return domain.Course{
		Code:        get(payloadCode),
		Description: get(payloadDescription),
		Semester:    get(payloadSemester),
		Instructor:  get(payloadInstructor),
	}
}
