package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/foomo/resinaro/audit"
	"github.com/foomo/resinaro/config"
	"github.com/foomo/resinaro/reports"
	"github.com/foomo/resinaro/vo"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Println(comment, err)
		os.Exit(1)
	}
}

func main() {
	flagReport := flag.String("report", "summary", "report to print after the crawl")
	flagPrefix := flag.String("prefix", "", "only report urls with this prefix")
	flagServe := flag.String("serve", "", "serve all reports on this address after the crawl")
	flagTarget := flag.String("target", "", "overrides the audit target from the config")
	flagDebug := flag.Bool("debug", false, "dump the effective config")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Println("usage:", os.Args[0], "[flags] path/to/config.yaml")
		flag.PrintDefaults()
		os.Exit(1)
	}

	must("could not load .env:", config.LoadEnv())
	conf, errConf := config.Get(flag.Arg(0))
	must("config error:", errConf)
	if *flagTarget != "" {
		target, errTarget := config.ParseTarget(*flagTarget)
		must("invalid target:", errTarget)
		conf.Audit.Target = target
	}
	if *flagDebug {
		spew.Dump(conf.Audit)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("crawling", conf.Audit.Target.BaseURL, conf.Audit.Target.Paths)
	status, errCrawl := audit.Crawl(ctx, conf.Audit, audit.NewClient(10*time.Second))
	must("crawl failed:", errCrawl)

	must("report failed:", reports.Write(*flagReport, status, os.Stdout, *flagPrefix))

	if *flagServe != "" {
		basePath := "/reports"
		mux := http.NewServeMux()
		mux.Handle(basePath+"/", reports.GetReportHandler(basePath, func() *vo.Status { return &status }))
		mux.Handle(basePath, http.RedirectHandler(basePath+"/", http.StatusFound))
		fmt.Println("serving reports on", *flagServe+basePath)
		log.Fatal(http.ListenAndServe(*flagServe, mux))
	}

	for _, res := range status.Results {
		if res.Validations.HasErrors() {
			os.Exit(2)
		}
	}
}
