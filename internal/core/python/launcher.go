package python

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"argilla-trainer/internal/records"
	"argilla-trainer/plugin/shared"

	"github.com/hashicorp/go-plugin"
	"github.com/klauspost/cpuid/v2"
)

// StartFunc starts a backend for the given framework. The returned func
// releases the backend.
type StartFunc func(framework records.Framework) (shared.Backend, func(), error)

type HardwareOptions struct {
	EnableMPSFallback bool

	// NumThreads sets OMP_NUM_THREADS. 0 uses the number of physical cores.
	NumThreads int
}

// Launcher runs the framework plugin script as a separate process.
type Launcher struct {
	PythonExecutable string
	PluginScript     string
	Env              []string
}

func NewLauncher(pythonExecutable, pluginScript string, hw HardwareOptions) *Launcher {
	return &Launcher{
		PythonExecutable: pythonExecutable,
		PluginScript:     pluginScript,
		Env:              HardwareEnv(hw),
	}
}

var logCPUOnce sync.Once

func physicalCores() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// HardwareEnv returns the environment variables passed to framework processes.
// The host process environment is never modified.
func HardwareEnv(hw HardwareOptions) []string {
	logCPUOnce.Do(func() {
		slog.Info("detected cpu",
			"brand", cpuid.CPU.BrandName,
			"physical_cores", cpuid.CPU.PhysicalCores,
			"logical_cores", cpuid.CPU.LogicalCores,
			"avx2", cpuid.CPU.Supports(cpuid.AVX2),
			"avx512", cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW),
		)
	})

	threads := hw.NumThreads
	if threads <= 0 {
		threads = physicalCores()
	}

	env := []string{fmt.Sprintf("OMP_NUM_THREADS=%d", threads)}
	if hw.EnableMPSFallback {
		env = append(env, "PYTORCH_ENABLE_MPS_FALLBACK=1")
	}
	return env
}

func (l *Launcher) Start(framework records.Framework) (shared.Backend, func(), error) {
	cmd := exec.Command(l.PythonExecutable, l.PluginScript, "--framework", string(framework))
	cmd.Env = append(os.Environ(), l.Env...)

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  shared.Handshake,
		Plugins:          shared.PluginMap,
		Cmd:              cmd,
		AllowedProtocols: []plugin.Protocol{
			plugin.ProtocolNetRPC, plugin.ProtocolGRPC},
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, nil, fmt.Errorf("error connecting to %s process: %w", framework, err)
	}

	raw, err := rpcClient.Dispense(shared.PluginName)
	if err != nil {
		client.Kill()
		return nil, nil, fmt.Errorf("error dispensing '%s': %w", shared.PluginName, err)
	}

	backend, ok := raw.(shared.Backend)
	if !ok {
		client.Kill()
		return nil, nil, fmt.Errorf("dispensed interface '%s' is not of expected type shared.Backend (actual type: %T)", shared.PluginName, raw)
	}

	slog.Info("started framework process", "framework", framework, "script", l.PluginScript)

	return backend, client.Kill, nil
}
