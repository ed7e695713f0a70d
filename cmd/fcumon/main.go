package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/robotalks/fcu.go/pkg/env"
	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/link/mqtt"
	"github.com/robotalks/fcu.go/pkg/link/wire"
)

var (
	mqttURL    = env.Default().MQTTBrokerURL
	recordFile string
	maxSizeMB  = 64
	maxBackups = 4
)

func init() {
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&recordFile, "record", recordFile, "Also record decoded frames to this file, rotated by size.")
	flag.IntVar(&maxSizeMB, "record-max-size", maxSizeMB, "Max size in MB of a record file before rotation.")
	flag.IntVar(&maxBackups, "record-max-backups", maxBackups, "Number of rotated record files to keep.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)
	if recordFile != "" {
		recorder := &lumberjack.Logger{
			Filename:   recordFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			Compress:   true,
		}
		defer recorder.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, recorder))
	}

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if err = q.Connect(); err != nil {
		log.Fatalln(err)
	}
	defer q.Close()

	q.Sub("+/+", mqtt.Handler(func(topic string, payload []byte) {
		f, err := wire.Unpack(payload)
		if err != nil {
			log.Printf("%s: bad frame: %v", topic, err)
			return
		}
		msg, err := f.Decode()
		if err != nil {
			log.Printf("%s: decode error: (seq=%d sysid=%d) %v", topic, f.Seq, f.SysID, err)
			return
		}
		log.Printf("%s: #%d [%d] %s %s", topic, f.Seq, f.SysID,
			strings.TrimPrefix(fmt.Sprintf("%T", msg), "*link."), msg.String())
	}))

	runner := fx.NewRunner().HandleSignals()
	<-runner.Context.Done()
}
