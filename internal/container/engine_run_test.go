// SPDX-License-Identifier: MPL-2.0

package container

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"
)

func TestBaseCLIEngine_Run_Success(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.Stdout = "broker output"
	engine := NewDockerEngine("/usr/bin/docker", WithExecCommand(recorder.CommandFunc(t)))

	var stdout bytes.Buffer
	result, err := engine.Run(context.Background(), RunOptions{
		Image:  "apache/activemq-artemis:latest-alpine",
		Name:   "artemis",
		Remove: true,
		Ports: []PortMapping{
			{HostPort: 61616, ContainerPort: 61616},
			{HostPort: 8161, ContainerPort: 8161},
		},
		Stdout: &stdout,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("Run() exit code = %d, want 0", result.ExitCode)
	}
	if result.Error != nil {
		t.Errorf("Run() result error = %v, want nil", result.Error)
	}
	if stdout.String() != "broker output" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "broker output")
	}

	inv := recorder.LastInvocation()
	if inv == nil {
		t.Fatal("no command was dispatched")
	}
	if inv.Name != "/usr/bin/docker" {
		t.Errorf("dispatched binary = %q, want %q", inv.Name, "/usr/bin/docker")
	}
	want := []string{
		"run", "--rm", "--name", "artemis",
		"-p", "61616:61616", "-p", "8161:8161",
		"apache/activemq-artemis:latest-alpine",
	}
	if !slices.Equal(inv.Args, want) {
		t.Errorf("dispatched args = %v, want %v", inv.Args, want)
	}
}

func TestBaseCLIEngine_Run_NonzeroExitIsNotAnError(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.ExitCode = 7
	engine := NewPodmanEngine("/usr/bin/podman", WithExecCommand(recorder.CommandFunc(t)))

	result, err := engine.Run(context.Background(), RunOptions{Image: "alpine:3"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.ExitCode != 7 {
		t.Errorf("Run() exit code = %d, want 7", result.ExitCode)
	}
	if result.Error != nil {
		t.Errorf("Run() result error = %v, want nil (nonzero exit is the caller's to interpret)", result.Error)
	}
}

func TestBaseCLIEngine_Run_ValidatesOptions(t *testing.T) {
	recorder := NewMockCommandRecorder()
	engine := NewDockerEngine("/usr/bin/docker", WithExecCommand(recorder.CommandFunc(t)))

	_, err := engine.Run(context.Background(), RunOptions{})
	if !errors.Is(err, ErrMissingImage) {
		t.Fatalf("Run() error = %v, want errors.Is(ErrMissingImage)", err)
	}
	if len(recorder.Invocations) != 0 {
		t.Error("Run() dispatched a command despite invalid options")
	}
}
