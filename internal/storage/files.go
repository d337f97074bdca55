// Package storage handles deployment and report file access. The only
// persistence in the system is flat files: a deployment file read once
// per run and a report file written once.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

// DeploymentStore abstracts where deployment input comes from and
// where the rendered report goes.
type DeploymentStore interface {
	ReadDeployment(ctx context.Context) (io.ReadCloser, error)
	WriteReport(ctx context.Context, report string) error
}

type fileStore struct {
	deployPath string
	reportPath string
}

// NewFileStore creates a DeploymentStore backed by the local
// filesystem.
func NewFileStore(deployPath, reportPath string) (DeploymentStore, error) {
	if deployPath == "" {
		return nil, fmt.Errorf("deployment file path is required")
	}
	if reportPath == "" {
		return nil, fmt.Errorf("report file path is required")
	}
	return &fileStore{deployPath: deployPath, reportPath: reportPath}, nil
}

// ReadDeployment opens the deployment file. The caller owns the
// returned ReadCloser.
func (s *fileStore) ReadDeployment(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.deployPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open deployment file: %w", err)
	}
	return f, nil
}

// WriteReport writes the report file in one shot, replacing any
// previous run's output.
func (s *fileStore) WriteReport(_ context.Context, report string) error {
	if err := os.WriteFile(s.reportPath, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
