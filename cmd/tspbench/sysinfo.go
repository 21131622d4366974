package main

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// sysInfo describes the benchmark environment so recorded numbers stay
// comparable across machines.
type sysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	Memory   string `json:"memory"`
}

// collectSysInfo gathers host facts best-effort; probes that fail leave
// their field as "unknown" rather than aborting a benchmark run.
func collectSysInfo() sysInfo {
	info := sysInfo{Platform: "unknown", CPU: "unknown", Memory: "unknown"}

	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.Memory = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}
