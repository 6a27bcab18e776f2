package providers

import (
	"fmt"
	"pitwall/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.Error())
	}
	if cv.conf.Broker.Enabled && cv.conf.Broker.URL == "" {
		return fmt.Errorf("invalid config: broker.url is required when broker is enabled")
	}
	return nil
}
