package app

import (
	"github.com/specialistvlad/cleago/internal/registry"
	"github.com/specialistvlad/cleago/modules/admin"
	"github.com/specialistvlad/cleago/modules/calculator"
	"github.com/specialistvlad/cleago/modules/env_vars"
	"github.com/specialistvlad/cleago/modules/home"
	"github.com/specialistvlad/cleago/modules/http_request"
	"github.com/specialistvlad/cleago/modules/print"
	"github.com/specialistvlad/cleago/modules/s3"
	"github.com/specialistvlad/cleago/modules/socketio"
	"github.com/specialistvlad/cleago/modules/students"
)

// coreModules is the definitive list of all modules that are compiled into
// the clea binary.
var coreModules = []registry.Module{
	&calculator.Module{},
	&students.Module{},
	&admin.Module{},
	&home.Module{},
	&socketio.Module{},
	&print.Module{},
	&env_vars.Module{},
	&http_request.Module{},
	&s3.Module{},
}
