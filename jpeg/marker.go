package jpeg

// Marker values, named after the teacher's own constant block in segment.go
// (jrm-1535/jpeg), trimmed to the markers this decoder actually dispatches
// on plus the ones it must recognize solely to reject with a clear error.
const (
    _SOI  = 0xffd8
    _EOI  = 0xffd9

    _SOF0  = 0xffc0 // baseline sequential DCT, the only frame type supported
    _SOF1  = 0xffc1
    _SOF2  = 0xffc2
    _SOF3  = 0xffc3
    _DHT   = 0xffc4
    _SOF5  = 0xffc5
    _SOF6  = 0xffc6
    _SOF7  = 0xffc7
    _JPG   = 0xffc8
    _SOF9  = 0xffc9
    _SOF10 = 0xffca
    _SOF11 = 0xffcb
    _DAC   = 0xffcc
    _SOF13 = 0xffcd
    _SOF14 = 0xffce
    _SOF15 = 0xffcf

    _RST0 = 0xffd0
    _RST7 = 0xffd7

    _DQT = 0xffdb
    _DNL = 0xffdc
    _DRI = 0xffdd
    _DHP = 0xffde
    _EXP = 0xffdf

    _APP0  = 0xffe0
    _APP15 = 0xffef

    _COM = 0xfffe

    _SOS = 0xffda
)

// ismarkerSOFn reports whether marker is one of the SOFn markers this
// decoder does not implement (anything but SOF0), following the teacher's
// predicate of the same name in jfif.go.
func ismarkerSOFn(marker uint) bool {
    if marker < _SOF0 || marker > _SOF15 {
        return false
    }
    if marker == _DHT || marker == _JPG || marker == _DAC {
        return false
    }
    return marker != _SOF0
}

func markerName(marker uint) string {
    switch marker {
    case _SOI:
        return "SOI"
    case _EOI:
        return "EOI"
    case _SOF0:
        return "SOF0"
    case _DHT:
        return "DHT"
    case _DQT:
        return "DQT"
    case _DRI:
        return "DRI"
    case _SOS:
        return "SOS"
    case _COM:
        return "COM"
    }
    if marker >= _APP0 && marker <= _APP15 {
        return "APPn"
    }
    if marker >= _SOF0 && marker <= _SOF15 && marker != _DHT && marker != _JPG && marker != _DAC {
        return "SOFn"
    }
    if marker >= _RST0 && marker <= _RST7 {
        return "RSTn"
    }
    return "unknown marker"
}
