package shared

import (
	"net/rpc"
)

// RPCClient is an implementation of Backend that talks over RPC.
type RPCClient struct{ client *rpc.Client }

func (m *RPCClient) Init(req InitRequest) error {
	return m.client.Call("Plugin.Init", req, new(interface{}))
}

func (m *RPCClient) UpdateConfig(req UpdateConfigRequest) error {
	return m.client.Call("Plugin.UpdateConfig", req, new(interface{}))
}

func (m *RPCClient) Train(outputDir string) error {
	return m.client.Call("Plugin.Train", outputDir, new(interface{}))
}

func (m *RPCClient) Predict(texts []string) ([]PredictResult, error) {
	var resp []PredictResult
	err := m.client.Call("Plugin.Predict", texts, &resp)
	return resp, err
}

func (m *RPCClient) Save(outputDir string) error {
	return m.client.Call("Plugin.Save", outputDir, new(interface{}))
}

func (m *RPCClient) Describe() (string, error) {
	var resp string
	err := m.client.Call("Plugin.Describe", new(interface{}), &resp)
	return resp, err
}

// Here is the RPC server that RPCClient talks to, conforming to
// the requirements of net/rpc
type RPCServer struct {
	// This is the real implementation
	Impl Backend
}

func (m *RPCServer) Init(req InitRequest, resp *interface{}) error {
	return m.Impl.Init(req)
}

func (m *RPCServer) UpdateConfig(req UpdateConfigRequest, resp *interface{}) error {
	return m.Impl.UpdateConfig(req)
}

func (m *RPCServer) Train(outputDir string, resp *interface{}) error {
	return m.Impl.Train(outputDir)
}

func (m *RPCServer) Predict(texts []string, resp *[]PredictResult) error {
	v, err := m.Impl.Predict(texts)
	*resp = v
	return err
}

func (m *RPCServer) Save(outputDir string, resp *interface{}) error {
	return m.Impl.Save(outputDir)
}

func (m *RPCServer) Describe(args interface{}, resp *string) error {
	v, err := m.Impl.Describe()
	*resp = v
	return err
}
