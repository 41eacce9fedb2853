package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Yigitalp02/asl-glove-simulator/pkg/config"
	"github.com/Yigitalp02/asl-glove-simulator/pkg/glove"
	"github.com/Yigitalp02/asl-glove-simulator/pkg/stream"
)

func main() {
	var (
		portFlag        = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		configFlag      = flag.String("config", "config.yaml", "Configuration file path")
		mockFlag        = flag.Bool("mock", false, "Echo the stream to the console instead of a serial port")
		listFlag        = flag.Bool("list", false, "List available serial ports and exit")
		writeConfigFlag = flag.Bool("write-config", false, "Write the current configuration file and exit")
	)
	flag.Parse()

	if *listFlag {
		ports, err := glove.Ports()
		if err != nil {
			log.Fatalf("Failed to list serial ports: %v", err)
		}
		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *writeConfigFlag {
		if err := cfg.Save(*configFlag); err != nil {
			log.Fatalf("Failed to write configuration: %v", err)
		}
		fmt.Printf("Wrote %s\n", *configFlag)
		return
	}

	// Override serial port if provided via command line
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	var dev glove.Device
	if *mockFlag {
		dev = glove.NewMock(os.Stdout)
	} else {
		dev = glove.NewSerial(cfg.Serial.Port, cfg.Serial.BaudRate, cfg.Serial.ReadTimeout)
	}

	// Pattern table and letter sequence are validated before touching the port.
	streamer, err := stream.New(cfg, dev)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fmt.Printf("Connecting to %s at %d baud...\n", cfg.Serial.Port, cfg.Serial.BaudRate)
	if err := dev.Connect(); err != nil {
		fmt.Printf("Serial port error: %v\n\n", err)
		fmt.Println("Troubleshooting:")
		fmt.Println("1. Make sure the virtual serial port pair is created and active")
		fmt.Println("2. Close any other programs using the port")
		fmt.Printf("3. Try a different port with -p (current: %s)\n", cfg.Serial.Port)
		if ports, perr := glove.Ports(); perr == nil && len(ports) > 0 {
			fmt.Printf("   Available ports: %s\n", strings.Join(ports, ", "))
		}
		os.Exit(1)
	}

	fmt.Printf("Connected to %s\n", cfg.Serial.Port)
	fmt.Println("Sending continuous sensor data...")
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := streamer.Run(ctx); err != nil {
		// log.Fatalf skips deferred calls; release the port first.
		if cerr := dev.Close(); cerr != nil {
			log.Printf("Error closing serial port: %v", cerr)
		}
		log.Fatalf("Stream failed: %v", err)
	}

	fmt.Println()
	fmt.Println("Stopping simulator...")
	if err := dev.Close(); err != nil {
		log.Printf("Error closing serial port: %v", err)
	}
	fmt.Println("Disconnected. Goodbye!")
}
