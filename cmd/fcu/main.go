package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/fcu.go/pkg/env"
	"github.com/robotalks/fcu.go/pkg/fcu"
	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/params"
	"github.com/robotalks/fcu.go/pkg/rc"
)

func init() {
	env.SetupFlags()
	rc.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf := env.NewConfig()
	open, err := conf.Opener()
	if err != nil {
		glog.Exitf("link: %v", err)
	}
	store := params.New(conf.ParamsFile)
	if _, err := os.Stat(conf.ParamsFile); err == nil {
		store.Read()
	}

	loop := fx.NewLoop()
	receiver := rc.NewConfig().NewReceiver()
	loop.Add(receiver)
	fcu.New(loop, store, open, receiver).Boot()

	if err := fx.NewRunner().HandleSignals().Go(loop).Wait(); err != nil {
		glog.Exit(err)
	}
}
