package fsop

// Limits caps what Decode will accept from an untrusted container.
type Limits struct {
	MaxShaders  int // decoded entries per container
	MaxBlobSize int // bytes per vertex or pixel blob
}

func defaultLimits() Limits {
	return Limits{
		MaxShaders:  64 << 10,
		MaxBlobSize: 256 << 20, // 256 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxShaders == 0 {
		l.MaxShaders = d.MaxShaders
	}
	if l.MaxBlobSize == 0 {
		l.MaxBlobSize = d.MaxBlobSize
	}
	return l
}
