// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"fmt"
	"github.com/alvinbaena/pwd-tool/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"reflect"
	"strings"
)

type Config struct {
	Port           int    `mapstructure:"PORT" validate:"required,min=1,max=65535"`
	SelfTLS        bool   `mapstructure:"SELF_TLS"`
	TLSCert        string `mapstructure:"TLS_CERT" validate:"required_without=SelfTLS,required_with=TLSKey"`
	TLSKey         string `mapstructure:"TLS_KEY" validate:"required_without=SelfTLS,required_with=TLSCert"`
	Debug          bool   `mapstructure:"DEBUG"`
	MinLength      int    `mapstructure:"MIN_LENGTH" validate:"min=1"`
	MaxLength      int    `mapstructure:"MAX_LENGTH" validate:"gtefield=MinLength"`
	DefaultLength  int    `mapstructure:"DEFAULT_LENGTH" validate:"gtefield=MinLength,ltefield=MaxLength"`
	DefaultSymbols bool   `mapstructure:"DEFAULT_SYMBOLS"`
	CacheSize      int64  `mapstructure:"CACHE_SIZE" validate:"min=0"`
}

// Length bounds of the original length slider.
const (
	DefaultMinLength = 5
	DefaultMaxLength = 50
	DefaultLength    = 16
	DefaultPort      = 3100
	DefaultCacheSize = 10000
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("MIN_LENGTH", DefaultMinLength)
	v.SetDefault("MAX_LENGTH", DefaultMaxLength)
	v.SetDefault("DEFAULT_LENGTH", DefaultLength)
	v.SetDefault("DEFAULT_SYMBOLS", true)
	v.SetDefault("CACHE_SIZE", DefaultCacheSize)
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		fv := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch fv.Kind() {
		case reflect.Struct:
			bindEnvs(v, fv.Interface(), append(parts, tv)...)
		default:
			_ = v.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_without":
		return fmt.Sprintf("This field is required if %s is not set", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	case "min":
		return fmt.Sprintf("This field must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("This field must be at most %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("This field must be greater than or equal to %s", util.ToScreamingSnakeCase(fe.Param()))
	case "ltefield":
		return fmt.Sprintf("This field must be less than or equal to %s", util.ToScreamingSnakeCase(fe.Param()))
	}
	return fe.Error() // default error
}

// LoadConfig reads the configuration from v. Environment variables are bound
// here, flags (if any) must already be bound by the caller.
func LoadConfig(v *viper.Viper) (config Config, err error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	SetDefaults(v)

	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	config = Config{}
	bindEnvs(v, config)

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("error reading configuration: %w", err)
	}

	validate := validator.New()
	if err = validate.Struct(&config); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}

			return config, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ". "))
		}

		return config, fmt.Errorf("error validating configuration: %w", err)
	}

	return config, nil
}
