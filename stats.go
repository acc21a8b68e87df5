package lazysort

// Stats counts the work an Iterator has done so far.
type Stats struct {
	Comparisons int // Comparator calls, including those made by the pivot selection
	Partitions  int // Ranges split by the partition engine
	Emitted     int // Elements returned by Next
	MaxPending  int // Largest number of ranges pending at once
}

// Step describes the work done by a single call to Next that emitted an element.
type Step struct {
	Comparisons int
	Partitions  int
	Pending     int // Ranges left pending after the call
}

// Observer is notified after each element an Iterator emits.
type Observer interface {
	ObserveNext(step Step)
}

// ObserverFunc is a function type that implements Observer.
type ObserverFunc func(step Step)

// ObserveNext calls the function.
func (f ObserverFunc) ObserveNext(step Step) {
	f(step)
}
