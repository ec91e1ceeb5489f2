package shared

import (
	"context"

	"argilla-trainer/plugin/proto"
)

// GRPCClient is an implementation of Backend that talks over gRPC.
type GRPCClient struct{ client proto.TrainerClient }

func (m *GRPCClient) Init(req InitRequest) error {
	_, err := m.client.Init(context.Background(), &proto.InitRequest{
		Framework:     req.Framework,
		Task:          req.Task,
		MultiLabel:    req.MultiLabel,
		Model:         req.Model,
		HasSeed:       req.HasSeed,
		Seed:          req.Seed,
		Dataset:       req.Dataset,
		ModelConfig:   req.ModelConfig,
		TrainerConfig: req.TrainerConfig,
	})
	return err
}

func (m *GRPCClient) UpdateConfig(req UpdateConfigRequest) error {
	_, err := m.client.UpdateConfig(context.Background(), &proto.UpdateConfigRequest{
		ModelConfig:   req.ModelConfig,
		TrainerConfig: req.TrainerConfig,
	})
	return err
}

func (m *GRPCClient) Train(outputDir string) error {
	_, err := m.client.Train(context.Background(), &proto.TrainRequest{OutputDir: outputDir})
	return err
}

func (m *GRPCClient) Predict(texts []string) ([]PredictResult, error) {
	resp, err := m.client.Predict(context.Background(), &proto.PredictRequest{Texts: texts})
	if err != nil {
		return nil, err
	}

	results := make([]PredictResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = fromProtoResult(r)
	}
	return results, nil
}

func (m *GRPCClient) Save(outputDir string) error {
	_, err := m.client.Save(context.Background(), &proto.SaveRequest{OutputDir: outputDir})
	return err
}

func (m *GRPCClient) Describe() (string, error) {
	resp, err := m.client.Describe(context.Background(), &proto.DescribeRequest{})
	if err != nil {
		return "", err
	}
	return resp.Description, nil
}

func fromProtoResult(r *proto.PredictResult) PredictResult {
	res := PredictResult{Text: r.Text, Tokens: r.Tokens, Tags: r.Tags}
	for _, l := range r.Labels {
		res.Labels = append(res.Labels, LabelScore{Label: l.Label, Score: l.Score})
	}
	for _, s := range r.Spans {
		res.Spans = append(res.Spans, Span{Label: s.Label, Start: int(s.Start), End: int(s.End), Score: s.Score})
	}
	return res
}

func toProtoResult(r PredictResult) *proto.PredictResult {
	res := &proto.PredictResult{Text: r.Text, Tokens: r.Tokens, Tags: r.Tags}
	for _, l := range r.Labels {
		res.Labels = append(res.Labels, &proto.LabelScore{Label: l.Label, Score: l.Score})
	}
	for _, s := range r.Spans {
		res.Spans = append(res.Spans, &proto.Span{Label: s.Label, Start: int32(s.Start), End: int32(s.End), Score: s.Score})
	}
	return res
}

// Here is the gRPC server that GRPCClient talks to.
type GRPCServer struct {
	proto.UnimplementedTrainerServer
	// This is the real implementation
	Impl Backend
}

func (m *GRPCServer) Init(ctx context.Context, req *proto.InitRequest) (*proto.Empty, error) {
	return &proto.Empty{}, m.Impl.Init(InitRequest{
		Framework:     req.Framework,
		Task:          req.Task,
		MultiLabel:    req.MultiLabel,
		Model:         req.Model,
		HasSeed:       req.HasSeed,
		Seed:          req.Seed,
		Dataset:       req.Dataset,
		ModelConfig:   req.ModelConfig,
		TrainerConfig: req.TrainerConfig,
	})
}

func (m *GRPCServer) UpdateConfig(ctx context.Context, req *proto.UpdateConfigRequest) (*proto.Empty, error) {
	return &proto.Empty{}, m.Impl.UpdateConfig(UpdateConfigRequest{
		ModelConfig:   req.ModelConfig,
		TrainerConfig: req.TrainerConfig,
	})
}

func (m *GRPCServer) Train(ctx context.Context, req *proto.TrainRequest) (*proto.Empty, error) {
	return &proto.Empty{}, m.Impl.Train(req.OutputDir)
}

func (m *GRPCServer) Predict(ctx context.Context, req *proto.PredictRequest) (*proto.PredictResponse, error) {
	v, err := m.Impl.Predict(req.Texts)
	if err != nil {
		return nil, err
	}

	resp := &proto.PredictResponse{Results: make([]*proto.PredictResult, len(v))}
	for i, r := range v {
		resp.Results[i] = toProtoResult(r)
	}
	return resp, nil
}

func (m *GRPCServer) Save(ctx context.Context, req *proto.SaveRequest) (*proto.Empty, error) {
	return &proto.Empty{}, m.Impl.Save(req.OutputDir)
}

func (m *GRPCServer) Describe(ctx context.Context, req *proto.DescribeRequest) (*proto.DescribeResponse, error) {
	v, err := m.Impl.Describe()
	if err != nil {
		return nil, err
	}
	return &proto.DescribeResponse{Description: v}, nil
}
