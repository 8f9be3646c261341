package contracts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest/standard"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func TestCompileAll(t *testing.T) {
	cs, err := CompileAll(".")
	require.NoError(t, err)
	require.Len(t, cs, len(allContracts))

	names := []string{"Synthetic Oracle", "Synthetic Token", "Synthetic Vault"}
	for i := range cs {
		require.Equal(t, names[i], cs[i].Manifest.Name)
		require.NotEmpty(t, cs[i].NEF.Script)
	}

	oracle, token, vault := cs[0], cs[1], cs[2]

	require.NotNil(t, oracle.Manifest.ABI.GetMethod("getLatestPrice", 0))
	require.True(t, oracle.Manifest.ABI.GetMethod("getLatestPrice", 0).Safe)

	require.NoError(t, standard.Check(&token.Manifest, manifest.NEP17StandardName))
	require.NotNil(t, token.Manifest.ABI.GetMethod("setPool", 2))

	require.NotNil(t, vault.Manifest.ABI.GetMethod("onNEP17Payment", 3))
	require.NotNil(t, vault.Manifest.ABI.GetMethod("withdraw", 2))
	require.NotNil(t, vault.Manifest.ABI.GetEvent("Deposit"))
	require.Nil(t, vault.Manifest.ABI.GetMethod("update", -1))
}

func TestCompileMissingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contract.go"), []byte("package c\n"), 0o644))

	_, err := Compile(dir)
	require.Error(t, err)
}

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()

	_nef, _ := anyValidNEF(t)
	_manifest, _ := anyValidManifest(t, "zero")

	for _, name := range allContracts {
		require.NoError(t, Write(filepath.Join(dir, name), Contract{NEF: _nef, Manifest: _manifest}))
	}

	cs, err := ReadAll(os.DirFS(dir))
	require.NoError(t, err)
	require.Len(t, cs, len(allContracts))
	require.Equal(t, _nef.Script, cs[0].NEF.Script)
	require.Equal(t, "zero", cs[2].Manifest.Name)
}

func TestGetMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := ReadAll(_fs)
	require.Error(t, err)

	// Missing manifest.
	_fs[OracleDir+"/"+nefName] = &fstest.MapFile{}
	_, err = read(_fs, []string{OracleDir})
	require.Error(t, err)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = VaultDir + "/" + nefName
		manifestPath = VaultDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := read(_fs, []string{VaultDir})
	require.NoError(t, err)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}

	_, err = read(_fs, []string{VaultDir})
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = read(_fs, []string{VaultDir})
	require.ErrorIs(t, err, errInvalidManifest)
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
