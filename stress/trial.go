package stress

import (
	"math"
	"math/rand"

	"github.com/eaugeas/rbtree/container/tree"
	errs "github.com/eaugeas/rbtree/errors"
	"github.com/eaugeas/rbtree/logs"
	"github.com/pkg/errors"
)

// Error codes of the failures detected by a Trial
const (
	// ErrCodeMismatch is returned when the tree and the oracle
	// disagree on the outcome of an operation
	ErrCodeMismatch = 2000 + iota

	// ErrCodeHeight is returned when the tree is higher than
	// 2*log2(n+1)
	ErrCodeHeight
)

// Trial inserts random keys in a new tree, removes some of them
// and checks the tree against an Oracle after every phase
type Trial struct {
	ID   int   `json:"id"`
	Seed int64 `json:"seed"`

	// Size is the number of insertions
	Size int `json:"size"`

	// Removals is the number of removals attempted, which may
	// target keys that are not in the tree
	Removals int `json:"removals"`

	// KeyRange bounds the keys to [0, KeyRange). A range smaller
	// than Size forces repeated keys
	KeyRange int `json:"keyRange"`
}

// TrialResult is the outcome of running a Trial
type TrialResult struct {
	Trial

	Removed int    `json:"removed"`
	Len     int    `json:"len"`
	Height  int    `json:"height"`
	Error   string `json:"error,omitempty"`

	Err error `json:"-"`
}

// Log implementation of logs.Loggable
func (r TrialResult) Log(fields logs.Fields) {
	fields.Add("trial", r.ID)
	fields.Add("seed", r.Seed)
	fields.Add("size", r.Size)
	fields.Add("removed", r.Removed)
	fields.Add("len", r.Len)
	fields.Add("height", r.Height)

	if r.Err != nil {
		switch cause := errors.Cause(r.Err).(type) {
		case *errs.Error:
			cause.Log(fields)
		default:
			fields.Add("description", r.Err.Error())
		}
	}
}

// MaxHeight returns the highest a red black tree with n nodes
// can be
func MaxHeight(n int) int {
	return int(math.Floor(2 * math.Log2(float64(n+1))))
}

// Run executes the trial. The returned result is always
// populated, and its Err is the same as the returned error
func (t Trial) Run() (res TrialResult, err error) {
	res.Trial = t
	defer func() {
		res.Err = err
		if err != nil {
			res.Error = err.Error()
		}
	}()

	keyRange := t.KeyRange
	if keyRange <= 0 {
		keyRange = math.MaxInt32
	}

	rnd := rand.New(rand.NewSource(t.Seed))
	tr := tree.New[int, int]()
	oracle := NewOracle()

	for i := 0; i < t.Size; i++ {
		id := rnd.Intn(keyRange)
		tr.Insert(id, i)
		oracle.Insert(id, i)
	}

	if err := check(tr, oracle); err != nil {
		return res, errors.Wrap(err, "after insertions")
	}

	for i := 0; i < t.Removals; i++ {
		id := rnd.Intn(keyRange)
		removed := tr.Remove(id)
		if expected := oracle.Remove(id); removed != expected {
			return res, errs.New(ErrCodeMismatch,
				"removal %d of key %d returned %t, expected %t", i, id, removed, expected)
		}

		if removed {
			res.Removed++
		}
	}

	if err := check(tr, oracle); err != nil {
		return res, errors.Wrap(err, "after removals")
	}

	res.Len = tr.Len()
	res.Height = tr.Height()
	return res, nil
}

func check(tr *tree.Tree[int, int], oracle *Oracle) error {
	if err := tr.Verify(); err != nil {
		return err
	}

	if tr.Len() != oracle.Len() {
		return errs.New(ErrCodeMismatch, "tree has %d nodes, expected %d", tr.Len(), oracle.Len())
	}

	values, expected := tr.AsArray(), oracle.Values()
	for i := range expected {
		if values[i] != expected[i] {
			return errs.New(ErrCodeMismatch, "value at %d is %d, expected %d", i, values[i], expected[i])
		}
	}

	if h, limit := tr.Height(), MaxHeight(tr.Len()); h > limit {
		return errs.New(ErrCodeHeight, "tree with %d nodes has height %d, more than %d", tr.Len(), h, limit)
	}

	return nil
}
