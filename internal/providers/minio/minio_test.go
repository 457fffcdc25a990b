package minio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicReadPolicy(t *testing.T) {
	raw := publicReadPolicy("bingo-claim-archive")

	var policy struct {
		Version   string `json:"Version"`
		Statement []struct {
			Sid       string   `json:"Sid"`
			Effect    string   `json:"Effect"`
			Principal string   `json:"Principal"`
			Action    []string `json:"Action"`
			Resource  []string `json:"Resource"`
		} `json:"Statement"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &policy))

	require.Len(t, policy.Statement, 1)
	stmt := policy.Statement[0]
	assert.Equal(t, "Allow", stmt.Effect)
	assert.Equal(t, "*", stmt.Principal)
	assert.Equal(t, []string{"s3:GetObject"}, stmt.Action)
	assert.Equal(t, []string{"arn:aws:s3:::bingo-claim-archive/*"}, stmt.Resource)
}
