// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"

	"gocoreutils/pkg/platform"
)

type unameCommand struct {
	name  string
	flags []FlagInfo
}

func newUnameCommand() *unameCommand {
	return &unameCommand{
		name: "uname",
		flags: []FlagInfo{
			{Name: "all", ShortName: "a", Description: "print all information, in the following order, except omit -p and -i if unknown"},
			{Name: "kernel-name", ShortName: "s", Description: "print the kernel name"},
			{Name: "nodename", ShortName: "n", Description: "print the network node hostname"},
			{Name: "kernel-release", ShortName: "r", Description: "print the kernel release"},
			{Name: "kernel-version", ShortName: "v", Description: "print the kernel version"},
			{Name: "machine", ShortName: "m", Description: "print the machine hardware name"},
			{Name: "processor", ShortName: "p", Description: "print the processor type or \"unknown\""},
			{Name: "hardware-platform", ShortName: "i", Description: "print the hardware platform or \"unknown\""},
			{Name: "operating-system", ShortName: "o", Description: "print the operating system"},
			{Name: "architecture", ShortName: "A", Description: "print the systems architecture"},
		},
	}
}

func (c *unameCommand) Name() string { return c.name }

func (c *unameCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *unameCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	all := fs.Bool("a", false, "print all information, in the following order, except omit -p and -i if unknown")
	fs.BoolVar(all, "all", false, "print all information, in the following order, except omit -p and -i if unknown")
	kernelNameFlag := fs.Bool("s", false, "print the kernel name")
	fs.BoolVar(kernelNameFlag, "kernel-name", false, "print the kernel name")
	nodename := fs.Bool("n", false, "print the network node hostname")
	fs.BoolVar(nodename, "nodename", false, "print the network node hostname")
	kernelRelease := fs.Bool("r", false, "print the kernel release")
	fs.BoolVar(kernelRelease, "kernel-release", false, "print the kernel release")
	kernelVersion := fs.Bool("v", false, "print the kernel version")
	fs.BoolVar(kernelVersion, "kernel-version", false, "print the kernel version")
	machine := fs.Bool("m", false, "print the machine hardware name")
	fs.BoolVar(machine, "machine", false, "print the machine hardware name")
	processor := fs.Bool("p", false, "print the processor type or \"unknown\"")
	fs.BoolVar(processor, "processor", false, "print the processor type or \"unknown\"")
	hardwarePlatform := fs.Bool("i", false, "print the hardware platform or \"unknown\"")
	fs.BoolVar(hardwarePlatform, "hardware-platform", false, "print the hardware platform or \"unknown\"")
	operatingSystem := fs.Bool("o", false, "print the operating system")
	fs.BoolVar(operatingSystem, "operating-system", false, "print the operating system")
	architecture := fs.Bool("A", false, "print the systems architecture")
	fs.BoolVar(architecture, "architecture", false, "print the systems architecture")
	if handled, err := parseArgs(hc, c, "[OPTION]...", fs, cf, args[1:]); handled {
		return err
	}
	if fs.NArg() > 0 {
		return extraOperand(hc, c.name, fs.Arg(0))
	}

	system := platform.KernelName(runtime.GOOS)
	var node, release, version string
	if info, err := host.InfoWithContext(ctx); err == nil {
		node = info.Hostname
		release = info.KernelVersion
		version = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	}
	if node == "" {
		node, _ = os.Hostname()
	}

	var fields []string
	if *kernelNameFlag || *all {
		fields = append(fields, system)
	}
	if *nodename || *all {
		fields = append(fields, node)
	}
	if *kernelRelease || *all {
		fields = append(fields, release)
	}
	if *kernelVersion || *all {
		fields = append(fields, version)
	}
	if *machine || *all {
		fields = append(fields, machineArch(ctx))
	}
	if *processor {
		fields = append(fields, processorType(ctx))
	}
	if *hardwarePlatform {
		// No portable probe exists for the hardware platform.
		fields = append(fields, "unknown")
	}
	if *architecture {
		fields = append(fields, strconv.Itoa(strconv.IntSize)+"bit")
	}
	// The operating system doubles as the default output, and with -a it
	// appears after the other fields as well.
	if *operatingSystem || *all || len(fields) == 0 {
		fields = append(fields, system)
	}

	fmt.Fprintln(hc.Stdout, strings.Join(fields, " "))
	return nil
}

// processorType reports the CPU model name, or "unknown" when the host
// probe yields nothing.
func processorType(ctx context.Context) string {
	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 && cpus[0].ModelName != "" {
		return cpus[0].ModelName
	}
	return "unknown"
}
