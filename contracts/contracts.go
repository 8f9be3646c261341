/*
Package contracts compiles synthetic asset contracts and stores compiled
artifacts.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

// Contract directory names.
const (
	OracleDir = "oracle"
	TokenDir  = "token"
	VaultDir  = "vault"
)

const (
	configName   = "config.yml"
	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	// deployment order, the vault refers to both others
	allContracts = []string{
		OracleDir,
		TokenDir,
		VaultDir,
	}
)

// Compile compiles Go contract from the directory using config.yml next to
// the sources for the manifest.
func Compile(dir string) (Contract, error) {
	var c Contract

	conf, err := smartcontract.ParseContractConfig(filepath.Join(dir, configName))
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}

	ne, di, err := compiler.CompileWithOptions(dir, nil, nil)
	if err != nil {
		return c, fmt.Errorf("compile: %w", err)
	}

	o := &compiler.Options{
		Name:                       conf.Name,
		SourceURL:                  conf.SourceURL,
		ContractEvents:             conf.Events,
		DeclaredNamedTypes:         conf.NamedTypes,
		ContractSupportedStandards: conf.SupportedStandards,
		SafeMethods:                conf.SafeMethods,
		Overloads:                  conf.Overloads,
		Permissions:                make([]manifest.Permission, len(conf.Permissions)),
	}
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}

	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return c, fmt.Errorf("create manifest: %w", err)
	}

	c.NEF = *ne
	c.Manifest = *m

	return c, nil
}

// CompileAll compiles oracle, token and vault contracts from the
// subdirectories of root. They're returned in the order they're supposed to
// be deployed.
func CompileAll(root string) ([]Contract, error) {
	var res = make([]Contract, 0, len(allContracts))

	for _, dir := range allContracts {
		c, err := Compile(filepath.Join(root, dir))
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", dir, err)
		}

		res = append(res, c)
	}

	return res, nil
}

// Write saves compiled contract to the directory as contract.nef and
// manifest.json, creating the directory if needed.
func Write(dir string, c Contract) error {
	bNEF, err := c.NEF.Bytes()
	if err != nil {
		return fmt.Errorf("encode NEF: %w", err)
	}

	jManifest, err := json.Marshal(c.Manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath.Join(dir, nefName), bNEF, 0o644)
	if err != nil {
		return fmt.Errorf("write NEF: %w", err)
	}

	err = os.WriteFile(filepath.Join(dir, manifestName), jManifest, 0o644)
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// ReadAll reads oracle, token and vault artifacts saved by Write into
// subdirectories of the file system root.
func ReadAll(fsys fs.FS) ([]Contract, error) {
	return read(fsys, allContracts)
}

func read(fsys fs.FS, dirs []string) ([]Contract, error) {
	var res = make([]Contract, 0, len(dirs))

	for i := range dirs {
		c, err := readContractFromDir(fsys, dirs[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", dirs[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
