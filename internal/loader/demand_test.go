package loader

import (
	"strings"
	"testing"

	"qpce/internal/domain"
	"qpce/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNetwork(t *testing.T) *domain.Network {
	t.Helper()
	network, err := LoadNetwork("testdata/network-valid.yaml")
	require.NoError(t, err)
	return network
}

func pathDocument(fields ...string) []byte {
	var b strings.Builder
	b.WriteString("paths:\n")
	for i, f := range fields {
		if i == 0 {
			b.WriteString("- ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(f)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func TestLoadDemand(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		network := validNetwork(t)
		demand, err := LoadDemand("testdata/demand-valid.yaml", network)
		require.NoError(t, err)
		assert.Same(t, network, demand.Network())
		assert.Equal(t, 2, demand.NumPaths())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDemand("testdata/non-existent-file.yaml", domain.NewNetwork())
		assert.ErrorIs(t, err, ErrFileAccess)
	})
}

func TestParseDemand(t *testing.T) {
	t.Run("alice to bob", func(t *testing.T) {
		network := validNetwork(t)
		demand, err := ReadDemand(strings.NewReader(string(pathDocument(
			"name: alice-to-bob",
			"end-point-1: alice",
			"end-point-2: bob",
			"bandwidth: 100",
			"fidelity: 0.95"))), network)
		require.NoError(t, err)

		paths := demand.Paths()
		require.Len(t, paths, 1)
		assert.Equal(t, "alice-to-bob", paths[0].Name())
		assert.Equal(t, 100, paths[0].Bandwidth())
		assert.Equal(t, 0.95, paths[0].Fidelity())
		alice, _ := network.Router("alice")
		assert.Same(t, alice, paths[0].EndPoint1())
	})

	t.Run("integral fidelity", func(t *testing.T) {
		demand, err := ParseDemand(pathDocument(
			"name: p",
			"end-point-1: alice",
			"end-point-2: bob",
			"bandwidth: 1",
			"fidelity: 1"), validNetwork(t))
		require.NoError(t, err)
		assert.Equal(t, 1.0, demand.Paths()[0].Fidelity())
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := ParseDemand(pathDocument(
			"name: alice-to-bob",
			"This is not valid YAML",
			"end-point-2: bob",
			"bandwidth: 100",
			"fidelity: 0.95"), validNetwork(t))
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("bad attribute", func(t *testing.T) {
		_, err := ParseDemand(pathDocument(
			"name: alice-to-bob",
			"a-bad-attribute: alice",
			"end-point-2: bob",
			"bandwidth: 100",
			"fidelity: 0.95"), validNetwork(t))
		var sve *schema.SchemaValidationError
		require.ErrorAs(t, err, &sve)
		assert.Equal(t, "demand", sve.Document)
		// unknown a-bad-attribute and missing end-point-1
		assert.Len(t, sve.Diagnostics, 2)
	})

	t.Run("bad end-point-1", func(t *testing.T) {
		_, err := ParseDemand(pathDocument(
			"name: path-with-bad-end-point-1",
			"end-point-1: non-existing-router",
			"end-point-2: bob",
			"bandwidth: 100",
			"fidelity: 0.95"), validNetwork(t))
		var unknown *domain.UnknownRouterError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "end-point-1", unknown.Role)
	})

	t.Run("bad end-point-2", func(t *testing.T) {
		_, err := ParseDemand(pathDocument(
			"name: path-with-bad-end-point-2",
			"end-point-1: alice",
			"end-point-2: non-existing-router",
			"bandwidth: 100",
			"fidelity: 0.95"), validNetwork(t))
		require.ErrorIs(t, err, domain.ErrUnknownRouter)
		assert.Contains(t, err.Error(), "paths[0]")
	})

	t.Run("end-point of another network", func(t *testing.T) {
		other := domain.NewNetwork()
		other.AddRouter("alice")
		_, err := ParseDemand(pathDocument(
			"name: p",
			"end-point-1: alice",
			"end-point-2: bob",
			"bandwidth: 100",
			"fidelity: 0.95"), other)
		assert.ErrorIs(t, err, domain.ErrUnknownRouter)
	})

	t.Run("bad bandwidth", func(t *testing.T) {
		for _, bw := range []string{"-10", "0", "5.0"} {
			_, err := ParseDemand(pathDocument(
				"name: alice-to-bob",
				"end-point-1: alice",
				"end-point-2: bob",
				"bandwidth: "+bw,
				"fidelity: 0.95"), validNetwork(t))
			assert.ErrorIs(t, err, schema.ErrSchemaValidation, "bandwidth %s", bw)
		}
	})

	t.Run("whole float bandwidth", func(t *testing.T) {
		_, err := ParseDemand(pathDocument(
			"name: alice-to-bob",
			"end-point-1: alice",
			"end-point-2: bob",
			"bandwidth: 5.0",
			"fidelity: 0.95"), validNetwork(t))
		var sve *schema.SchemaValidationError
		require.ErrorAs(t, err, &sve)
		require.Len(t, sve.Diagnostics, 1)
		assert.Equal(t, "paths.0.bandwidth", sve.Diagnostics[0].Field)
		assert.Equal(t, "invalid_type", sve.Diagnostics[0].Kind)
	})

	t.Run("bad fidelity", func(t *testing.T) {
		for _, f := range []string{"-0.1", "0.0"} {
			_, err := ParseDemand(pathDocument(
				"name: alice-to-bob",
				"end-point-1: alice",
				"end-point-2: bob",
				"bandwidth: 100",
				"fidelity: "+f), validNetwork(t))
			assert.ErrorIs(t, err, domain.ErrInvalidFidelity, "fidelity %s", f)
		}
	})

	t.Run("duplicate path", func(t *testing.T) {
		doc := "paths:\n" +
			"- {name: p, end-point-1: alice, end-point-2: bob, bandwidth: 1, fidelity: 0.5}\n" +
			"- {name: p, end-point-1: bob, end-point-2: alice, bandwidth: 1, fidelity: 0.5}\n"
		_, err := ParseDemand([]byte(doc), validNetwork(t))
		require.ErrorIs(t, err, domain.ErrDuplicateName)
		assert.Contains(t, err.Error(), "paths[1]")
	})
}

func TestExportDemand(t *testing.T) {
	network := validNetwork(t)
	original, err := LoadDemand("testdata/demand-valid.yaml", network)
	require.NoError(t, err)

	data, err := ExportDemand(original)
	require.NoError(t, err)

	rebuilt, err := ParseDemand(data, network)
	require.NoError(t, err)
	assert.Equal(t, original.Fingerprint(), rebuilt.Fingerprint())
}
