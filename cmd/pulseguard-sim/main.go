// FilePath: cmd/pulseguard-sim/main.go
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulseguard/hub/internal/models"
	"github.com/pulseguard/hub/internal/poller"
	nuts "github.com/vaudience/go-nuts"
)

// pulseguard-sim plays the role of the wearable device: it posts randomized
// heart-rate/SpO2 readings and DHT climate data, and polls the alarm trigger
// so a ringing reminder shows up as a beep in the log.
func main() {
	var (
		serverURL    = flag.String("server", "http://localhost:9002", "hub base URL")
		heartEvery   = flag.Duration("heart-interval", 2*time.Second, "heart-rate posting interval")
		dhtEvery     = flag.Duration("dht-interval", 5*time.Second, "climate posting interval")
		triggerEvery = flag.Duration("trigger-interval", 2*time.Second, "alarm trigger polling interval")
		emergency    = flag.String("emergency", "", `fire one emergency on start, e.g. "Fall Detected"`)
		disease      = flag.String("disease", "", `file one disease report on start, e.g. "fever"`)
	)
	flag.Parse()

	nuts.InitVersion()
	nuts.L.Infof("[Sim] PulseGuard device simulator v%s -> %s", nuts.GetVersion(), *serverURL)

	client := poller.NewClient(*serverURL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	if *emergency != "" {
		if err := client.PostEmergency(ctx, "active", *emergency); err != nil {
			nuts.L.Errorf("[Sim] Failed to raise emergency: %v", err)
		}
	}
	if *disease != "" {
		if err := client.PostDisease(ctx, *disease); err != nil {
			nuts.L.Errorf("[Sim] Failed to report disease: %v", err)
		}
	}

	heart := time.NewTicker(*heartEvery)
	dht := time.NewTicker(*dhtEvery)
	trigger := time.NewTicker(*triggerEvery)
	defer heart.Stop()
	defer dht.Stop()
	defer trigger.Stop()

	for {
		select {
		case <-ctx.Done():
			nuts.L.Infof("[Sim] Shutting down")
			return
		case <-heart.C:
			hr := 60 + rand.Float64()*40
			spo2 := 95 + rand.Float64()*4
			update := models.VitalsUpdate{HeartRate: &hr, Pulse: &spo2}
			if err := client.PostVitals(ctx, update); err != nil {
				nuts.L.Warnf("[Sim] Failed to post vitals: %v", err)
				continue
			}
			nuts.L.Debugf("[Sim] Posted vitals hr=%.0f spo2=%.0f", hr, spo2)
		case <-dht.C:
			temp := 20 + rand.Float64()*10
			hum := 40 + rand.Float64()*30
			if err := client.PostDHT(ctx, temp, hum); err != nil {
				nuts.L.Warnf("[Sim] Failed to post climate data: %v", err)
				continue
			}
			nuts.L.Debugf("[Sim] Posted climate t=%.1f h=%.1f", temp, hum)
		case <-trigger.C:
			status, err := client.AlarmTrigger(ctx)
			if err != nil {
				nuts.L.Warnf("[Sim] Failed to poll alarm trigger: %v", err)
				continue
			}
			if status == models.AlarmRinging {
				nuts.L.Infof("[Sim] BEEP BEEP BEEP")
			}
		}
	}
}
