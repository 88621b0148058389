package exported

// PacketI defines the standard interface for IBC packets
type PacketI interface {
	GetSequence() uint64
	GetTimeoutHeight() Height
	GetTimeoutTimestamp() uint64
	GetSourcePort() string
	GetSourceChannel() string
	GetDestPort() string
	GetDestChannel() string
	GetData() []byte
	ValidateBasic() error
}

// Acknowledgement defines the interface used to return acknowledgements in
// the OnRecvPacket callback. The Acknowledgement interface is used by core
// IBC to ensure partial state changes are not committed when packet receives
// have not properly succeeded (typically resulting in an error acknowledgement
// being returned).
type Acknowledgement interface {
	Success() bool
	Acknowledgement() []byte
}
