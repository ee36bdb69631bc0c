// Package service exposes the screening engine over gRPC. It is thin
// marshaling: every RPC delegates to the engine and maps failures to
// status codes.
package service

import (
	"context"
	"math"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/orbitops-data/orbitops/internal/debris"
	"github.com/orbitops-data/orbitops/internal/engine"
	"github.com/orbitops-data/orbitops/internal/history"
	"github.com/orbitops-data/orbitops/internal/monitoring"
	"github.com/orbitops-data/orbitops/internal/orbit"
	"github.com/orbitops-data/orbitops/internal/probability"
	"github.com/orbitops-data/orbitops/internal/service/pb"
	"github.com/orbitops-data/orbitops/internal/tle"
)

// Ensure Server implements the gRPC interface.
var _ pb.OrbitOpsServer = (*Server)(nil)

// Server implements the OrbitOps gRPC service over an Engine.
type Server struct {
	pb.UnimplementedOrbitOpsServer

	engine  *engine.Engine
	sources []tle.Source
}

// NewServer creates a Server over the engine and source list.
func NewServer(eng *engine.Engine, sources []tle.Source) *Server {
	return &Server{engine: eng, sources: sources}
}

// RegisterService registers the service with a gRPC server.
func RegisterService(grpcServer *grpc.Server, server *Server) {
	pb.RegisterOrbitOpsServer(grpcServer, server)
}

func vec3Proto(v orbit.Vec3) *pb.Vec3 {
	return &pb.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// GetCatalog lists the loaded population.
func (s *Server) GetCatalog(ctx context.Context, req *pb.CatalogRequest) (*pb.CatalogResponse, error) {
	elements := s.engine.Elements()

	resp := &pb.CatalogResponse{TotalCount: int32(len(elements))}
	for _, rec := range elements {
		resp.Satellites = append(resp.Satellites, &pb.SatelliteSummary{
			CatalogNumber:    int32(rec.CatalogNumber),
			Name:             rec.Name,
			IntlDesignator:   rec.IntlDesignator,
			InclinationDeg:   rec.Inclination / tle.Deg2Rad,
			Eccentricity:     rec.Eccentricity,
			MeanMotionRevDay: rec.MeanMotionRevPerDay(),
			EpochJd:          rec.EpochJD,
			IsDebris:         debris.IsDebris(rec),
		})
	}
	return resp, nil
}

// StreamPositions propagates across the requested range and streams one
// position batch per step. Cancellation is polled between steps.
func (s *Server) StreamPositions(req *pb.TimeRange, stream pb.OrbitOps_StreamPositionsServer) error {
	start, end, step, err := rangeParams(req)
	if err != nil {
		return err
	}

	ctx := stream.Context()
	for t := start; t <= end; t += step {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}

		batch := s.engine.Propagate(t)
		positions, ids := s.engine.Positions()
		elements := s.engine.Elements()

		out := &pb.PositionBatch{
			TimeMinutes: t,
			FailedCount: int32(len(batch.Failed)),
		}
		for i, pos := range positions {
			name := ""
			if i < len(elements) {
				name = elements[i].Name
			}
			out.Positions = append(out.Positions, &pb.SatellitePosition{
				CatalogNumber: int32(ids[i]),
				Name:          name,
				Position:      vec3Proto(pos),
				TimeMinutes:   t,
			})
		}
		if err := stream.Send(out); err != nil {
			return err
		}
	}
	return nil
}

// StreamConjunctions screens each step of the requested range and streams
// the surviving pairs, refined with collision probabilities when asked.
func (s *Server) StreamConjunctions(req *pb.ScreeningRequest, stream pb.OrbitOps_StreamConjunctionsServer) error {
	start, end, step, err := rangeParams(req.GetRange())
	if err != nil {
		return err
	}

	ctx := stream.Context()
	for t := start; t <= end; t += step {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}

		out := &pb.ConjunctionBatch{TimeMinutes: t}
		if req.GetRefine() {
			for _, res := range s.engine.ScreenAndRefine(t) {
				out.Conjunctions = append(out.Conjunctions, resultProto(res))
			}
		} else {
			pairs, _ := s.engine.Screen(t)
			for _, cj := range pairs {
				out.Conjunctions = append(out.Conjunctions, &pb.ConjunctionRecord{
					Id1:         int32(cj.ID1),
					Id2:         int32(cj.ID2),
					DistanceKm:  cj.DistanceKm,
					TimeMinutes: cj.TimeMinutes,
				})
			}
		}
		if err := stream.Send(out); err != nil {
			return err
		}
	}
	return nil
}

func resultProto(res probability.Result) *pb.ConjunctionRecord {
	return &pb.ConjunctionRecord{
		Id1:              int32(res.ID1),
		Id2:              int32(res.ID2),
		Name1:            res.Name1,
		Name2:            res.Name2,
		DistanceKm:       res.MissDistanceKm,
		TimeMinutes:      res.TCAMinutes,
		RelativeSpeedKmS: res.RelativeSpeedKmS,
		Probability:      res.Probability,
		Samples:          int32(res.Samples),
		Hits:             int32(res.Hits),
	}
}

// GetOrbitPath samples one orbit of the requested object.
func (s *Server) GetOrbitPath(ctx context.Context, req *pb.OrbitPathRequest) (*pb.OrbitPathResponse, error) {
	points := int(req.GetPoints())
	if points <= 0 {
		points = 90
	}

	path, err := s.engine.OrbitPath(int(req.GetCatalogNumber()), points)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	resp := &pb.OrbitPathResponse{CatalogNumber: req.GetCatalogNumber()}
	for _, rec := range s.engine.Elements() {
		if rec.CatalogNumber == int(req.GetCatalogNumber()) {
			resp.Name = rec.Name
			resp.PeriodMinutes = 2.0 * math.Pi / rec.MeanMotion
			break
		}
	}
	for _, pos := range path {
		resp.Positions = append(resp.Positions, vec3Proto(pos))
	}
	return resp, nil
}

// SimulateManeuver applies an impulsive burn and returns the predicted
// post-burn trajectory.
func (s *Server) SimulateManeuver(ctx context.Context, req *pb.ManeuverRequest) (*pb.ManeuverResponse, error) {
	dv := orbit.Vec3{}
	if v := req.GetDeltaVRic(); v != nil {
		dv = orbit.Vec3{X: v.GetX(), Y: v.GetY(), Z: v.GetZ()}
	}

	path, err := s.engine.SimulateManeuver(
		int(req.GetCatalogNumber()), dv,
		req.GetBurnTimeMinutes(), req.GetDurationMinutes(), req.GetStepMinutes(),
	)
	if err != nil {
		return &pb.ManeuverResponse{Success: false, Message: err.Error()}, nil
	}

	resp := &pb.ManeuverResponse{Success: true, Message: "maneuver simulated"}
	for _, pt := range path {
		resp.PredictedPath = append(resp.PredictedPath, &pb.SatellitePosition{
			CatalogNumber: req.GetCatalogNumber(),
			Position:      vec3Proto(pt.Position),
			Velocity:      vec3Proto(pt.Velocity),
			TimeMinutes:   pt.TimeMinutes,
		})
	}
	return resp, nil
}

// OptimizeAvoidance plans the minimum-impulse avoidance burn.
func (s *Server) OptimizeAvoidance(ctx context.Context, req *pb.AvoidanceRequest) (*pb.AvoidanceResponse, error) {
	result, err := s.engine.PlanAvoidance(
		int(req.GetProtectedId()), int(req.GetThreatId()), req.GetTimeToTcaMinutes(),
	)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	resp := &pb.AvoidanceResponse{
		Success:         result.Success,
		Message:         result.Message,
		DeltaVRic:       vec3Proto(result.DeltaV),
		BurnTimeMinutes: result.BurnTimeMinutes,
		TotalDeltaVKmS:  result.TotalDeltaVKmS,
		NewMissKm:       result.NewMissKm,
		FuelCostKg:      result.FuelCostKg,
	}
	for _, alt := range result.Alternatives {
		resp.Alternatives = append(resp.Alternatives, &pb.BurnAlternative{
			DeltaVRic:   vec3Proto(alt.DeltaV),
			Description: alt.Description,
			FuelCostKg:  alt.FuelCostKg,
		})
	}
	return resp, nil
}

// GetHistoryEvents returns recorded conjunction events in a time range.
func (s *Server) GetHistoryEvents(ctx context.Context, req *pb.HistoryRequest) (*pb.HistoryEvents, error) {
	events := s.engine.Recorder().EventsRange(req.GetStartMinutes(), req.GetEndMinutes())

	resp := &pb.HistoryEvents{}
	for _, e := range events {
		resp.Events = append(resp.Events, &pb.ConjunctionRecord{
			Id1:              int32(e.ID1),
			Id2:              int32(e.ID2),
			Name1:            e.Name1,
			Name2:            e.Name2,
			DistanceKm:       e.MissDistanceKm,
			TimeMinutes:      e.TimeMinutes,
			RelativeSpeedKmS: e.RelativeSpeedKmS,
			Probability:      e.Probability,
		})
	}
	return resp, nil
}

// GetSatelliteHistory returns all recorded events involving one object.
func (s *Server) GetSatelliteHistory(ctx context.Context, req *pb.SatelliteHistoryRequest) (*pb.HistoryEvents, error) {
	events := s.engine.Recorder().EventsForSatellite(int(req.GetCatalogNumber()))

	resp := &pb.HistoryEvents{}
	for _, e := range events {
		resp.Events = append(resp.Events, &pb.ConjunctionRecord{
			Id1:              int32(e.ID1),
			Id2:              int32(e.ID2),
			Name1:            e.Name1,
			Name2:            e.Name2,
			DistanceKm:       e.MissDistanceKm,
			TimeMinutes:      e.TimeMinutes,
			RelativeSpeedKmS: e.RelativeSpeedKmS,
			Probability:      e.Probability,
		})
	}
	return resp, nil
}

// GetSnapshot returns the recorded snapshot at (or nearest) a time.
func (s *Server) GetSnapshot(ctx context.Context, req *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	rec := s.engine.Recorder()

	if req.GetNearest() {
		if found, ok := rec.SnapshotNearest(req.GetTimeMinutes()); ok {
			return snapshotProto(found), nil
		}
		return &pb.SnapshotResponse{Found: false}, nil
	}
	if found, ok := rec.SnapshotAt(req.GetTimeMinutes()); ok {
		return snapshotProto(found), nil
	}
	return &pb.SnapshotResponse{Found: false}, nil
}

// ListSources enumerates the configured element sources.
func (s *Server) ListSources(ctx context.Context, req *pb.SourcesRequest) (*pb.SourceList, error) {
	resp := &pb.SourceList{}
	for _, src := range s.sources {
		resp.Sources = append(resp.Sources, &pb.ElementSource{
			Name:           src.Name,
			Url:            src.URL,
			RefreshSeconds: int64(src.RefreshInterval.Seconds()),
			Enabled:        src.Enabled,
		})
	}
	return resp, nil
}

// UpdateElements parses raw element text and merges it into the population.
func (s *Server) UpdateElements(ctx context.Context, req *pb.UpdateElementsRequest) (*pb.UpdateElementsResponse, error) {
	records, err := tle.Parse(strings.NewReader(req.GetElementText()))
	if err != nil {
		return &pb.UpdateElementsResponse{Success: false, Message: err.Error()}, nil
	}
	if len(records) == 0 {
		return &pb.UpdateElementsResponse{Success: false, Message: "no parsable element blocks"}, nil
	}

	population, err := s.engine.UpdateElements(records)
	if err != nil {
		return &pb.UpdateElementsResponse{
			Success: false,
			Message: err.Error(),
			Parsed:  int32(len(records)),
		}, nil
	}

	monitoring.Logf("service: merged %d element records, population now %d", len(records), population)
	return &pb.UpdateElementsResponse{
		Success:    true,
		Message:    "elements merged",
		Parsed:     int32(len(records)),
		Population: int32(population),
	}, nil
}

// GetDebrisFields groups debris fragments into fields by launch designator.
func (s *Server) GetDebrisFields(ctx context.Context, req *pb.DebrisFieldsRequest) (*pb.DebrisFieldsResponse, error) {
	resp := &pb.DebrisFieldsResponse{}
	for _, f := range s.engine.DebrisFields() {
		resp.Fields = append(resp.Fields, &pb.DebrisField{
			EventId:        int32(f.EventID),
			Name:           f.EventName,
			Fragments:      int32(f.TotalFragments),
			Center:         &pb.Vec3{X: f.CenterKm[0], Y: f.CenterKm[1], Z: f.CenterKm[2]},
			SpreadRadiusKm: f.SpreadRadiusKm,
		})
	}
	return resp, nil
}

func snapshotProto(snap *history.Snapshot) *pb.SnapshotResponse {
	return &pb.SnapshotResponse{
		Found:       true,
		TimeMinutes: snap.TimeMinutes,
		X:           snap.X,
		Y:           snap.Y,
		Z:           snap.Z,
		Ids:         snap.IDs,
	}
}

// AssessDebrisRisk rates the debris environment around one satellite.
func (s *Server) AssessDebrisRisk(ctx context.Context, req *pb.DebrisRiskRequest) (*pb.DebrisRiskResponse, error) {
	assessment, err := s.engine.AssessDebrisRisk(int(req.GetCatalogNumber()))
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	resp := &pb.DebrisRiskResponse{
		CatalogNumber: int32(assessment.CatalogNumber),
		NearbyCount:   int32(assessment.NearbyCount),
		EstimatedFlux: assessment.EstimatedFlux,
		OverallRisk:   string(assessment.Overall),
	}
	for _, d := range assessment.Closest {
		resp.Closest = append(resp.Closest, &pb.DebrisDistance{
			CatalogNumber: int32(d.CatalogNumber),
			DistanceKm:    d.DistanceKm,
		})
	}
	return resp, nil
}

func rangeParams(req *pb.TimeRange) (start, end, step float64, err error) {
	if req == nil {
		return 0, 0, 0, status.Error(codes.InvalidArgument, "time range is required")
	}
	start = req.GetStartMinutes()
	end = req.GetEndMinutes()
	step = req.GetStepMinutes()
	if step <= 0 {
		step = 1.0
	}
	if end < start {
		return 0, 0, 0, status.Error(codes.InvalidArgument, "end must not precede start")
	}
	return start, end, step, nil
}
