package sim

// Process is a row in the OS lab's process monitor.
type Process struct {
	PID    int
	Name   string
	CPU    float64
	Memory int // KB
	Status string
}

// Syscall is a row in the OS lab's syscall tracker.
type Syscall struct {
	Name    string
	Count   int
	AvgTime string
}

// ModelInfo is an entry in the AI lab's model registry.
type ModelInfo struct {
	ID       string
	Name     string
	Accuracy float64
	Status   string
}

// Dataset is an entry in the AI lab's dataset list.
type Dataset struct {
	Name    string
	Size    string
	Samples string
	Status  string
}

// Processes returns the kernel lab's process table.
func Processes() []Process {
	return []Process{
		{1024, "kernel_scheduler", 12.3, 256, "running"},
		{1157, "network_driver", 3.4, 128, "sleeping"},
		{1289, "filesystem_cache", 8.7, 512, "running"},
		{1345, "memory_manager", 15.2, 1024, "running"},
		{1456, "interrupt_handler", 2.1, 64, "running"},
	}
}

// BootLog returns the kernel boot sequence.
func BootLog() []string {
	return []string{
		"[0.000000] Linux version 6.2.0-research",
		"[0.000156] Command line: BOOT_IMAGE=/vmlinuz root=/dev/sda1",
		"[0.000234] KERNEL supported cpus: Intel",
		"[0.001234] BIOS-provided physical RAM map",
		"[0.002156] ACPI: Early table checksum verification",
		"[0.003890] Memory: 32GB available",
		"[0.004567] CPU: 16 cores detected",
		"[0.005234] PCI: Using configuration type 1",
		"[0.006789] Research modules loaded successfully",
	}
}

// Syscalls returns the syscall tracker rows.
func Syscalls() []Syscall {
	return []Syscall{
		{"sys_read", 234567, "0.23ms"},
		{"sys_write", 189234, "0.34ms"},
		{"sys_open", 45678, "1.2ms"},
		{"sys_close", 43210, "0.1ms"},
		{"sys_mmap", 12345, "2.1ms"},
	}
}

// Models returns the AI lab's model registry.
func Models() []ModelInfo {
	return []ModelInfo{
		{"neural-arch-v2.3", "Neural Architecture Search v2.3", 94.2, "training"},
		{"transformer-xl-4b", "Transformer XL 4B", 91.8, "completed"},
		{"quantum-nn-hybrid", "Quantum-NN Hybrid", 87.3, "paused"},
		{"neuromorphic-snn", "Neuromorphic SNN", 89.1, "idle"},
	}
}

// Datasets returns the AI lab's dataset list.
func Datasets() []Dataset {
	return []Dataset{
		{"Research Papers Corpus", "2.3TB", "45M", "active"},
		{"Multimodal Dataset v4", "1.8TB", "23M", "processing"},
		{"Synthetic Data Gen", "890GB", "12M", "complete"},
	}
}
