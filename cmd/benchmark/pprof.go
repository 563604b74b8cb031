package main

import (
	"net/http"
	"net/http/pprof"
)

// 构建过程的性能分析入口，访问/debug/pprof/查看
func startProfiler(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	go (&http.Server{Addr: addr, Handler: mux}).ListenAndServe()
}
