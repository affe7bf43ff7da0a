// SPDX-License-Identifier: MPL-2.0

package container

import (
	"errors"
	"slices"
	"testing"
)

func TestBaseCLIEngine_RunArgs(t *testing.T) {
	t.Parallel()
	engine := NewBaseCLIEngine("/usr/bin/docker")

	tests := []struct {
		name     string
		opts     RunOptions
		expected []string
	}{
		{
			name:     "minimal run",
			opts:     RunOptions{Image: "alpine:3"},
			expected: []string{"run", "alpine:3"},
		},
		{
			name: "remove and name",
			opts: RunOptions{
				Image:  "alpine:3",
				Name:   "broker",
				Remove: true,
			},
			expected: []string{"run", "--rm", "--name", "broker", "alpine:3"},
		},
		{
			name: "ports rendered in declared order",
			opts: RunOptions{
				Image: "alpine:3",
				Ports: []PortMapping{
					{HostPort: 61616, ContainerPort: 61616},
					{HostPort: 8161, ContainerPort: 8161},
				},
			},
			expected: []string{"run", "-p", "61616:61616", "-p", "8161:8161", "alpine:3"},
		},
		{
			name: "port with protocol",
			opts: RunOptions{
				Image: "alpine:3",
				Ports: []PortMapping{{HostPort: 5005, ContainerPort: 5005, Protocol: PortProtocolUDP}},
			},
			expected: []string{"run", "-p", "5005:5005/udp", "alpine:3"},
		},
		{
			name: "volume mount",
			opts: RunOptions{
				Image: "alpine:3",
				Volumes: []VolumeMount{
					{HostPath: "/tmp/etc-override", ContainerPath: "/var/lib/artemis-instance/etc-override"},
				},
			},
			expected: []string{"run", "-v", "/tmp/etc-override:/var/lib/artemis-instance/etc-override", "alpine:3"},
		},
		{
			name: "read-only volume",
			opts: RunOptions{
				Image:   "alpine:3",
				Volumes: []VolumeMount{{HostPath: "/a", ContainerPath: "/b", ReadOnly: true}},
			},
			expected: []string{"run", "-v", "/a:/b:ro", "alpine:3"},
		},
		{
			name: "env rendered in sorted key order",
			opts: RunOptions{
				Image: "alpine:3",
				Env:   map[string]string{"B": "2", "A": "1"},
			},
			expected: []string{"run", "-e", "A=1", "-e", "B=2", "alpine:3"},
		},
		{
			name: "command after image",
			opts: RunOptions{
				Image:   "alpine:3",
				Command: []string{"sh", "-c", "true"},
			},
			expected: []string{"run", "alpine:3", "sh", "-c", "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := engine.RunArgs(tt.opts)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("RunArgs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBaseCLIEngine_RunArgs_Deterministic(t *testing.T) {
	t.Parallel()
	engine := NewBaseCLIEngine("/usr/bin/podman")

	opts := RunOptions{
		Image:  "apache/activemq-artemis:latest-alpine",
		Name:   "artemis",
		Remove: true,
		Env:    map[string]string{"JAVA_OPTS": "-Xmx1g", "ARTEMIS_USER": "artemis"},
		Ports: []PortMapping{
			{HostPort: 61616, ContainerPort: 61616},
			{HostPort: 8161, ContainerPort: 8161},
		},
		Volumes: []VolumeMount{{HostPath: "/work/etc-override", ContainerPath: "/var/lib/artemis-instance/etc-override"}},
	}

	first := engine.RunArgs(opts)
	for range 50 {
		if got := engine.RunArgs(opts); !slices.Equal(got, first) {
			t.Fatalf("RunArgs() is not deterministic: %v vs %v", got, first)
		}
	}
}

func TestPortMapping_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mapping PortMapping
		wantErr error
	}{
		{
			name:    "valid",
			mapping: PortMapping{HostPort: 61616, ContainerPort: 61616},
		},
		{
			name:    "valid with protocol",
			mapping: PortMapping{HostPort: 1, ContainerPort: 2, Protocol: PortProtocolTCP},
		},
		{
			name:    "zero host port",
			mapping: PortMapping{HostPort: 0, ContainerPort: 8161},
			wantErr: ErrInvalidPortMapping,
		},
		{
			name:    "zero container port",
			mapping: PortMapping{HostPort: 8161, ContainerPort: 0},
			wantErr: ErrInvalidPortMapping,
		},
		{
			name:    "bogus protocol",
			mapping: PortMapping{HostPort: 1, ContainerPort: 1, Protocol: "sctp"},
			wantErr: ErrInvalidPortMapping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.mapping.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want errors.Is(%v)", err, tt.wantErr)
			}
		})
	}
}

func TestVolumeMount_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mount   VolumeMount
		wantErr error
	}{
		{
			name:  "valid",
			mount: VolumeMount{HostPath: "/a", ContainerPath: "/b"},
		},
		{
			name:    "empty host path",
			mount:   VolumeMount{HostPath: "", ContainerPath: "/b"},
			wantErr: ErrInvalidVolumeMount,
		},
		{
			name:    "whitespace container path",
			mount:   VolumeMount{HostPath: "/a", ContainerPath: "   "},
			wantErr: ErrInvalidVolumeMount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.mount.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want errors.Is(%v)", err, tt.wantErr)
			}
			var vmErr *InvalidVolumeMountError
			if !errors.As(err, &vmErr) {
				t.Fatalf("Validate() = %T, want *InvalidVolumeMountError", err)
			}
			if len(vmErr.FieldErrs) == 0 {
				t.Error("InvalidVolumeMountError.FieldErrs is empty")
			}
		})
	}
}

func TestRunOptions_Validate(t *testing.T) {
	t.Parallel()

	if err := (RunOptions{Image: "alpine:3"}).Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	if err := (RunOptions{}).Validate(); !errors.Is(err, ErrMissingImage) {
		t.Fatalf("Validate() = %v, want errors.Is(ErrMissingImage)", err)
	}

	bad := RunOptions{
		Image: "alpine:3",
		Ports: []PortMapping{{HostPort: 0, ContainerPort: 0}},
	}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidPortMapping) {
		t.Fatalf("Validate() = %v, want errors.Is(ErrInvalidPortMapping)", err)
	}
}
