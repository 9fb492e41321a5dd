// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/internal/config"
	"github.com/katalvlaran/snumpy/internal/logger"
	"github.com/katalvlaran/snumpy/validator"
)

// literal decodes the TOML value given to --name.
func literal(name, s string) (any, error) {
	v, err := config.ParseLiteral(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}

	return v, nil
}

// arrayFlag decodes --name and ingests it as a vector or a matrix.
func arrayFlag(name, s string) (array.Array, error) {
	v, err := literal(name, s)
	if err != nil {
		return nil, err
	}
	a, err := validator.AsArray(v)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	logger.Debug("ingested", "flag", name, "shape", a.Shape().String())

	return a, nil
}
