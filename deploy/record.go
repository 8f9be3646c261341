package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// record is a YAML representation of Result. Hashes are stored in the
// usual little-endian string form.
type record struct {
	Oracle string `yaml:"oracle"`
	Token  string `yaml:"token"`
	Vault  string `yaml:"vault"`
}

// WriteRecord saves addresses of deployed contracts to the YAML file.
func WriteRecord(path string, res Result) error {
	data, err := yaml.Marshal(record{
		Oracle: res.Oracle.StringLE(),
		Token:  res.Token.StringLE(),
		Vault:  res.Vault.StringLE(),
	})
	if err != nil {
		return fmt.Errorf("encode deployment record: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// ReadRecord reads addresses of deployed contracts saved by WriteRecord.
func ReadRecord(path string) (Result, error) {
	var (
		res Result
		r   record
	)

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read deployment record: %w", err)
	}

	err = yaml.Unmarshal(data, &r)
	if err != nil {
		return res, fmt.Errorf("decode deployment record: %w", err)
	}

	for _, f := range []struct {
		name string
		s    string
		dst  *util.Uint160
	}{
		{"oracle", r.Oracle, &res.Oracle},
		{"token", r.Token, &res.Token},
		{"vault", r.Vault, &res.Vault},
	} {
		*f.dst, err = util.Uint160DecodeStringLE(f.s)
		if err != nil {
			return res, fmt.Errorf("invalid %s address in deployment record: %w", f.name, err)
		}
	}

	return res, nil
}
