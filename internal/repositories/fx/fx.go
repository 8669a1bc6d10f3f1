package fx

import (
	"github.com/orgball2608/post-pilot/internal/repositories/integration"
	"github.com/orgball2608/post-pilot/internal/repositories/postgroup"
	"go.uber.org/fx"
)

var Module = fx.Options(
	postgroup.Module,
	integration.Module,
)
