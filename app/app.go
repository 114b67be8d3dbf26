// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/openp2ptrade/dispute-node/availability"
	"github.com/openp2ptrade/dispute-node/config"
	"github.com/openp2ptrade/dispute-node/flags"
	"github.com/openp2ptrade/dispute-node/health"
	"github.com/openp2ptrade/dispute-node/jobs"
	"github.com/openp2ptrade/dispute-node/logger"
	"github.com/openp2ptrade/dispute-node/lvldb"
	"github.com/openp2ptrade/dispute-node/metrics"
	"github.com/openp2ptrade/dispute-node/selection"
	"github.com/openp2ptrade/dispute-node/statistics"
	"github.com/openp2ptrade/dispute-node/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)
	configURL := viper.GetString(flags.ConfigURLFlagName)

	configuration := &config.Config{}
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL, configuration)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}
	nodeConfig := configuration.NodeConfig

	outputs := []io.Writer{os.Stdout}
	if nodeConfig.LogFile != "" {
		logFile, err := logger.LogFile(nodeConfig.LogFile)
		panicOnError(err)
		defer logFile.Close()
		outputs = append(outputs, logFile)
	}
	logger.ConfigureLogger(nodeConfig.LogLevel, outputs...)

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	meter, err := metrics.DefaultMeter(ctx, nodeConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	selectionMetrics, err := metrics.NewSelectionMetrics(meter, nodeConfig.Env, nodeConfig.Id, time.Now().Unix())
	panicOnError(err)

	agentListProvider, err := agent.NewAgentListProvider(nodeConfig.AgentListConfiguration, http.DefaultClient)
	panicOnError(err)
	agentListStore := agent.NewAgentListStore(nodeConfig.AgentListConfiguration.Path)
	agentList, err := agentListStore.AgentList()
	// if agent list is not already in file, read from provider
	if err != nil {
		agentList, err = agentListProvider.AgentList(ctx)
		panicOnError(err)

		err = agentListStore.StoreAgentList(agentList)
		panicOnError(err)
	}
	arbitrators := agent.NewManager[*agent.Arbitrator]()
	arbitrators.Replace(agentList.Arbitrators)
	mediators := agent.NewManager[*agent.Mediator]()
	mediators.Replace(agentList.Mediators)
	selectionMetrics.TrackDisputeAgents(arbitrators.Len(), mediators.Len())
	log.Info().Msgf("Successfully loaded %d arbitrators and %d mediators", arbitrators.Len(), mediators.Len())

	tradeStatistics := statistics.NewManager()
	statisticsPath := nodeConfig.SelectionConfig.StatisticsPath
	if statisticsPath != "" {
		err = jobs.ReloadStatistics(statisticsPath, tradeStatistics)
		if err != nil {
			log.Warn().Err(err).Msg("Unable to load trade statistics, least used selection starts without history")
		}
	}

	// wait until the previous instance releases the store
	var db *lvldb.LVLDB
	for {
		db, err = lvldb.NewLvlDB(nodeConfig.StorePath)
		if err != nil {
			log.Error().Err(err).Msg("Unable to connect to selection store file, retry in 10 seconds")
			time.Sleep(10 * time.Second)
		} else {
			log.Info().Msg("Successfully connected to selection store file")
			break
		}
	}
	defer db.Close()
	selectionStore := store.NewSelectionStore(db)

	arbitratorStrategy, err := selection.ParseStrategy(nodeConfig.SelectionConfig.ArbitratorStrategy)
	panicOnError(err)
	mediatorStrategy, err := selection.ParseStrategy(nodeConfig.SelectionConfig.MediatorStrategy)
	panicOnError(err)
	rnd := selection.DefaultRandomSource()
	service := availability.NewService(
		agent.NodeAddress(nodeConfig.Address),
		selection.NewSelector[*agent.Arbitrator](arbitratorStrategy, tradeStatistics, arbitrators, rnd),
		selection.NewSelector[*agent.Mediator](mediatorStrategy, tradeStatistics, mediators, rnd),
		selectionStore,
		selectionMetrics,
	)

	go health.StartHealthEndpoint(nodeConfig.HealthPort, arbitrators, mediators)
	go jobs.StartAgentListRefreshJob(
		ctx, agentListProvider, agentListStore, arbitrators, mediators,
		nodeConfig.AgentListConfiguration.RefreshInterval, selectionMetrics,
	)
	if statisticsPath != "" {
		go jobs.StartStatisticsReloadJob(ctx, statisticsPath, tradeStatistics, nodeConfig.SelectionConfig.StatisticsReloadInterval)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	availability.NewHandler(service).RegisterRoutes(router.Group("/v1"))
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", nodeConfig.ApiPort),
		Handler: router,
	}

	errChn := make(chan error, 1)
	go func() {
		errChn <- server.ListenAndServe()
	}()

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	nodeName := viper.GetString(flags.NameFlagName)
	log.Info().Msgf("Started dispute node: %s on port %d", nodeName, nodeConfig.ApiPort)

	select {
	case err := <-errChn:
		log.Error().Err(err).Msg("failed to listen and serve")
		return err
	case sig := <-sysErr:
		log.Info().Msgf("terminating got ` [%v] signal", sig)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	}
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
