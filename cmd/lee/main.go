package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"lee/internal/assistant"
	"lee/internal/config"
	"lee/internal/geo"
	"lee/internal/ipc"
	"lee/internal/notes"
	"lee/internal/proxy"
	"lee/internal/speech"
	"lee/internal/ui"
	"lee/internal/weather"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	cfgFile := cli.StringP("config", "c", "lee.yaml", "Config file path")
	proxyAddr := cli.StringP("proxy", "p", "", "SOCKS proxy address")
	logLevel := cli.StringP("log", "l", "warn", "Log level")
	noAudio := cli.BoolP("no-audio", "n", false, "Disable microphone and speech output")
	cli.Parse()

	logFile, err := os.OpenFile("lee.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		logFile = os.Stderr
	}
	log.SetDefault(log.New(tint.NewHandler(logFile, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Error("Failed to load config", "err", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	if *proxyAddr != "" {
		httpClient, err = proxy.NewSocksClient(*proxyAddr, 10*time.Second)
		if err != nil {
			log.Error("Failed to dial socks proxy", "proxy", *proxyAddr, "err", err)
			os.Exit(1)
		}
	}

	store := notes.NewStore(cfg.NotesPath)
	resolver := geo.NewResolver()
	forecaster := weather.NewClient(weather.Config{HTTPClient: httpClient})

	session := assistant.NewSession(cfg.TeaInterval)
	dispatcher := assistant.New(assistant.Config{
		DefaultCity: cfg.DefaultCity,
		NoteCount:   cfg.NoteCount,
		WakeGating:  cfg.WakeGating,
	}, store, resolver, forecaster, session)

	var (
		listener ui.Listener
		speaker  ui.Speaker
	)
	if !*noAudio {
		rec := speech.NewRecorder(cfg.ListenFor)
		if err := rec.Init(); err != nil {
			log.Error("Failed to init audio", "err", err)
			os.Exit(1)
		}
		defer rec.Close()

		var stt speech.Recognizer
		if cfg.WhisperModel != "" {
			stt, err = speech.NewWhisperRecognizer(cfg.WhisperModel, cfg.Language)
			if err != nil {
				log.Error("Failed to init whisper", "err", err)
				os.Exit(1)
			}
		} else {
			stt = speech.NewRemoteRecognizer(httpClient, cfg.STTEndpoint, cfg.Language)
		}
		defer stt.Close()

		listener = speech.NewListener(rec, stt)
		speaker = speech.NewSpeaker(
			speech.NewSynthesizer(cfg.TTSEndpoint, cfg.Voice),
			speech.NewPlayer(),
		)
	}

	ctrl := make(chan ipc.ControlMessage, 4)
	if err := ipc.StartServer(func(msg ipc.ControlMessage) {
		select {
		case ctrl <- msg:
		default:
		}
	}); err != nil {
		log.Warn("Control socket unavailable", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session.Start(ctx)

	log.Info("Boot up - successful")

	p := tea.NewProgram(ui.New(ui.Options{
		Dispatcher: dispatcher,
		Session:    session,
		Notes:      store,
		Listener:   listener,
		Speaker:    speaker,
		Ctrl:       ctrl,
		NoteCount:  cfg.NoteCount,
	}), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Error("UI failed", "err", err)
		os.Exit(1)
	}
}
