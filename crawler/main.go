package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-globe/external/csse"
	"github.com/bitmark-inc/covid-globe/external/worldometers"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 60 * time.Second
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("globe")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("globe")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("output.dir", "data")
	viper.SetDefault("output.pretty", false)
	viper.SetDefault("http.timeout", defaultTimeout)
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	timeout := viper.GetDuration("http.timeout")
	httpClient := &http.Client{
		Timeout: timeout,
	}

	source := csse.New(httpClient, viper.GetString("csse.url"))
	population := worldometers.New(httpClient, viper.GetString("population.url"))

	outputDir := viper.GetString("output.dir")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "dir": outputDir, "error": err}).Panic("create output dir")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
	defer cancel()

	if err := run(ctx, source, population, outputDir, viper.GetBool("output.pretty")); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("update globe data")
		sentry.CaptureException(err)
		sentry.Flush(5 * time.Second)
		cancel()
		os.Exit(1)
	}

	log.WithField("prefix", logPrefix).Info("globe data updated")
}
