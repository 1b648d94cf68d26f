package system

import (
	"fmt"
	"log"
	"runtime"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open-file limit so the per-frame export can
// fan out wide without hitting EMFILE.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось получить лимит файлов: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось установить лимит файлов: %v", err)
	} else {
		fmt.Printf("[*] Системный лимит открытых файлов увеличен до %d\n", rLimit.Cur)
	}
}

// RenderWorkers picks a worker count for the frame export pool: one per
// logical CPU, capped by available memory when the caller knows roughly how
// many bytes a frame in flight costs.
func RenderWorkers(perFrameBytes uint64) int {
	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}

	if perFrameBytes > 0 {
		if vm, err := mem.VirtualMemory(); err == nil {
			byMem := int(vm.Available / perFrameBytes)
			if byMem < 1 {
				byMem = 1
			}
			if byMem < workers {
				workers = byMem
				fmt.Printf("[*] Потоки ограничены памятью: %d (доступно %d МБ)\n",
					workers, vm.Available/1024/1024)
			}
		}
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}
