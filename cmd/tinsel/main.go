package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/tinsel/internal/app"
	"github.com/ayusman/tinsel/internal/detector"
	"github.com/ayusman/tinsel/internal/scene"
	"github.com/ayusman/tinsel/internal/server"
	"github.com/ayusman/tinsel/internal/store"
	"github.com/ayusman/tinsel/internal/tray"
)

const trackingEnabledKey = "tracking_enabled"

func main() {
	cameraID := flag.Int("camera", 0, "camera device ID")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dataDir := flag.String("data", "", "data directory (default ~/.tinsel)")
	ornaments := flag.Int("ornaments", 120, "number of decorative ornaments")
	seed := flag.Uint64("seed", 0, "scatter seed (0 = time-based)")
	mock := flag.Bool("mock", false, "use the mock hand detector")
	noTray := flag.Bool("no-tray", false, "run without the system tray")
	flag.Parse()

	fmt.Println("Tinsel - Gesture-Controlled Christmas Tree")

	dir := *dataDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		dir = filepath.Join(homeDir, ".tinsel")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dir, "tinsel.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	sceneCfg := scene.DefaultConfig()
	sceneCfg.Ornaments = *ornaments
	sceneCfg.Seed = *seed
	if sceneCfg.Seed == 0 {
		sceneCfg.Seed = uint64(time.Now().UnixNano())
	}

	appCfg := app.Config{
		Store:    st,
		CameraID: *cameraID,
		Scene:    sceneCfg,
	}
	if *mock {
		appCfg.Detector = detector.NewMockDetector()
	}

	a := app.New(appCfg)
	if err := a.LoadPhotos(); err != nil {
		log.Fatalf("Failed to load photo library: %v", err)
	}

	if v, err := st.Setting(trackingEnabledKey); err == nil && v == "false" {
		a.SetEnabled(false)
	}

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start display pipeline: %v", err)
	}
	defer a.Stop()

	srv := server.New(server.Config{
		StaticDir:     findWebDir(),
		Store:         st,
		Scene:         a.Scene(),
		Camera:        a.Camera(),
		TrackingError: a.TrackingError,
	})

	go func() {
		fmt.Printf("Serving display on %s\n", *addr)
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if *noTray {
		select {}
	}

	// systray owns the main thread from here; quit tears everything down
	// via the deferred Stop/Close calls.
	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		if err := st.SetSetting(trackingEnabledKey, fmt.Sprintf("%t", enabled)); err != nil {
			log.Printf("Failed to persist tracking toggle: %v", err)
		}
	})
	go func() {
		for range time.Tick(time.Second) {
			t.SetMode(a.Scene().Mode().String())
		}
	}()

	t.Run()
}

// findWebDir searches for the front-end bundle in common locations.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".tinsel", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
