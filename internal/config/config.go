package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "SLOTBOOK_"

type Application struct {
	Addr         string       `koanf:"addr"`
	Slots        Slots        `koanf:"slots"`
	Availability Availability `koanf:"availability"`
}

type Slots struct {
	// DefaultFormat is "clock" or "raw"; used when a request does not ask for one.
	DefaultFormat   string `koanf:"defaultformat"`
	DefaultDuration int    `koanf:"defaultduration"`
}

type Availability struct {
	Timezone     string       `koanf:"timezone"`
	WeekFirstDay string       `koanf:"weekfirstday"`
	Weekly       []WeeklyRule `koanf:"weekly"`
	Custom       []CustomRule `koanf:"custom"`
}

type WeeklyRule struct {
	DaysOfWeek   []string `koanf:"dayofweek"`
	StartTime    string   `koanf:"starttime"`
	EndTime      string   `koanf:"endtime"`
	SlotDuration int      `koanf:"slotduration"`
	MaxCount     int      `koanf:"maxcount"`
	ScheduleType string   `koanf:"scheduletype"`
}

type CustomRule struct {
	Date         string `koanf:"date"`
	Status       string `koanf:"status"`
	Reason       string `koanf:"reason"`
	StartTime    string `koanf:"starttime"`
	EndTime      string `koanf:"endtime"`
	SlotDuration int    `koanf:"slotduration"`
	MaxCount     int    `koanf:"maxcount"`
	ScheduleType string `koanf:"scheduletype"`
}

func defaults() Application {
	return Application{
		Addr: ":8181",
		Slots: Slots{
			DefaultFormat:   "clock",
			DefaultDuration: 30,
		},
		Availability: Availability{
			Timezone:     "UTC",
			WeekFirstDay: "MONDAY",
		},
	}
}

// Load layers defaults, the YAML file at path (optional) and SLOTBOOK_ environment
// variables, in that order.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// SLOTBOOK_SLOTS_DEFAULTFORMAT -> slots.defaultformat
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
