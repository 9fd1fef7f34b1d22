// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/senachat/sena/ui/tui/models/components/stack"
	"github.com/senachat/sena/ui/tui/util"
)

const height = 2

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// the bar is dropped on terminals too short to also show a few chat lines
func (s *sizeConfig) Calculate(_ util.Model, _ int, total_size int) int {
	if total_size >= 8+height {
		return height
	}
	return 0
}
