package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"framescribe/constants"
	"framescribe/internal/archive"
	"framescribe/internal/entity"
	"framescribe/internal/inference"
	"framescribe/internal/repository"
)

// ---- job repo ----

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]*entity.Job{}}
}

func (r *fakeJobRepo) add(job *entity.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *job
	r.jobs[job.ID] = &cp
}

func (r *fakeJobRepo) get(id uuid.UUID) *entity.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *r.jobs[id]
	return &cp
}

func (r *fakeJobRepo) Create(ctx context.Context, p repository.CreateJobParams) (*entity.Job, error) {
	job := &entity.Job{
		ID:        uuid.New(),
		ProfileID: p.ProfileID,
		Kind:      p.Kind,
		Status:    constants.JobStatusPending,
		Step:      constants.StepPreprocessing,
	}
	r.add(job)
	return job, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s not found", id)
	}
	cp := *job
	return &cp, nil
}

func (r *fakeJobRepo) ListByStatus(_ context.Context, st constants.JobStatus) ([]*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Job
	for _, j := range r.jobs {
		if j.Status == st {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[id].Status = constants.JobStatusProcessing
	r.jobs[id].ErrorMsg = ""
	return nil
}

func (r *fakeJobRepo) AdvanceStep(_ context.Context, id uuid.UUID, step constants.JobStep) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if constants.StepIndex(step) > constants.StepIndex(r.jobs[id].Step) {
		r.jobs[id].Step = step
	}
	return nil
}

func (r *fakeJobRepo) MarkDone(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[id].Status = constants.JobStatusDone
	return nil
}

func (r *fakeJobRepo) SetError(_ context.Context, id uuid.UUID, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[id].Status = constants.JobStatusError
	r.jobs[id].ErrorMsg = msg
	return nil
}

func (r *fakeJobRepo) SetPreprocessResult(_ context.Context, id uuid.UUID, total int, filteredKey, thumbKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.jobs[id]
	j.TotalImages = total
	j.PreprocessedImages = total
	j.FilteredArchiveKey = filteredKey
	j.ThumbnailKey = thumbKey
	return nil
}

func (r *fakeJobRepo) SetSubmitProgress(_ context.Context, id uuid.UUID, submitted, totalBatches, batchSize int, batchID, inputFileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.jobs[id]
	j.SubmittedImages = submitted
	j.TotalBatches = totalBatches
	j.BatchSize = batchSize
	j.CurrentBatchID = batchID
	j.CurrentInputFileID = inputFileID
	return nil
}

func (r *fakeJobRepo) SetBatchSize(_ context.Context, id uuid.UUID, size int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[id].BatchSize = size
	return nil
}

func (r *fakeJobRepo) SetCompletedBatches(_ context.Context, id uuid.UUID, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[id].CompletedBatches = n
	return nil
}

func (r *fakeJobRepo) SetArtifacts(_ context.Context, id uuid.UUID, textKey string, textSize int64, richKey string, richSize int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.jobs[id]
	j.TextDocKey = textKey
	j.TextDocSize = textSize
	j.RichDocKey = richKey
	j.RichDocSize = richSize
	return nil
}

// ---- frame repo ----

type fakeFrameRepo struct {
	mu       sync.Mutex
	frames   map[uuid.UUID][]entity.Frame
	replaces int
}

func newFakeFrameRepo() *fakeFrameRepo {
	return &fakeFrameRepo{frames: map[uuid.UUID][]entity.Frame{}}
}

func (r *fakeFrameRepo) ReplaceForJob(_ context.Context, jobID uuid.UUID, frames []entity.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames[jobID] = append([]entity.Frame(nil), frames...)
	r.replaces++
	return nil
}

func (r *fakeFrameRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]*entity.Frame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := append([]entity.Frame(nil), r.frames[jobID]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].FrameIndex < rows[j].FrameIndex })
	out := make([]*entity.Frame, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *fakeFrameRepo) CountByJob(_ context.Context, jobID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames[jobID]), nil
}

// ---- batch repo ----

type fakeBatchRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Batch
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{rows: map[uuid.UUID]*entity.Batch{}}
}

func (r *fakeBatchRepo) find(jobID uuid.UUID, index int) *entity.Batch {
	for _, row := range r.rows {
		if row.JobID == jobID && row.BatchIndex == index {
			return row
		}
	}
	return nil
}

func (r *fakeBatchRepo) Reserve(_ context.Context, jobID uuid.UUID, index, itemCount int, supplementary bool) (*entity.Batch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row := r.find(jobID, index); row != nil {
		cp := *row
		return &cp, nil
	}
	row := &entity.Batch{
		ID:            uuid.New(),
		JobID:         jobID,
		BatchIndex:    index,
		ItemCount:     itemCount,
		State:         constants.BatchRowCreated,
		Supplementary: supplementary,
	}
	r.rows[row.ID] = row
	cp := *row
	return &cp, nil
}

func (r *fakeBatchRepo) Get(_ context.Context, jobID uuid.UUID, index int) (*entity.Batch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := r.find(jobID, index)
	if row == nil {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *fakeBatchRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]*entity.Batch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Batch
	for _, row := range r.rows {
		if row.JobID == jobID {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BatchIndex < out[j].BatchIndex })
	return out, nil
}

func (r *fakeBatchRepo) SetInputFile(_ context.Context, id uuid.UUID, inputFileID string, itemCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[id].InputFileID = inputFileID
	r.rows[id].ItemCount = itemCount
	return nil
}

func (r *fakeBatchRepo) SetSubmitted(_ context.Context, id uuid.UUID, providerBatchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[id].ProviderBatchID = providerBatchID
	r.rows[id].State = constants.BatchRowSubmitted
	return nil
}

func (r *fakeBatchRepo) SetCompleted(_ context.Context, id uuid.UUID, outputFileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[id].OutputFileID = outputFileID
	r.rows[id].State = constants.BatchRowCompleted
	r.rows[id].NextPollAt = nil
	return nil
}

func (r *fakeBatchRepo) SetFailed(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[id].State = constants.BatchRowFailed
	r.rows[id].NextPollAt = nil
	return nil
}

func (r *fakeBatchRepo) SetNextPollAt(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := at
	r.rows[id].NextPollAt = &cp
	return nil
}

// ---- step ledger ----

type fakeStepRepo struct {
	mu    sync.Mutex
	steps map[string]json.RawMessage
}

func newFakeStepRepo() *fakeStepRepo {
	return &fakeStepRepo{steps: map[string]json.RawMessage{}}
}

func stepKey(jobID uuid.UUID, name string) string { return jobID.String() + "/" + name }

func (r *fakeStepRepo) Get(_ context.Context, jobID uuid.UUID, name string) (json.RawMessage, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.steps[stepKey(jobID, name)]
	return raw, ok, nil
}

func (r *fakeStepRepo) Put(_ context.Context, jobID uuid.UUID, name string, result json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps[stepKey(jobID, name)] = result
	return nil
}

func (r *fakeStepRepo) DeleteForJob(_ context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.steps {
		if strings.HasPrefix(k, jobID.String()+"/") {
			delete(r.steps, k)
		}
	}
	return nil
}

// ---- manifest ----

type fakeManifest struct {
	mu    sync.Mutex
	items map[uuid.UUID][]archive.WorkItem
}

func newFakeManifest() *fakeManifest {
	return &fakeManifest{items: map[uuid.UUID][]archive.WorkItem{}}
}

func (m *fakeManifest) Save(_ context.Context, jobID uuid.UUID, items []archive.WorkItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[jobID] = append([]archive.WorkItem(nil), items...)
	return nil
}

func (m *fakeManifest) Load(_ context.Context, jobID uuid.UUID) ([]archive.WorkItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]archive.WorkItem(nil), m.items[jobID]...), nil
}

func (m *fakeManifest) Purge(_ context.Context, jobID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, jobID)
	return nil
}

// ---- object store ----

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *fakeStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed.example/" + key, nil
}

func (s *fakeStore) PresignPut(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed.example/put/" + key, nil
}

// ---- inference provider ----

// fakeProvider simulates the batch API: uploads become files, created batches
// complete instantly with a scripted per-item response.
type fakeProvider struct {
	mu      sync.Mutex
	files   map[string][]byte
	batches map[string]*inference.Batch
	nextID  int

	// capacityUntil rejects CreateBatch with ErrCapacity while the submitted
	// item count exceeds this value; 0 disables the behavior.
	capacityAbove int
	// failItems holds global indexes whose response lines carry errors.
	failItems map[int]bool
	// failOnce clears a failItems entry after it fires, so the retry succeeds.
	failOnce bool
	// respond overrides the default per-item text.
	respond func(cor Correlation) string

	// createErrOnce fails the next CreateBatch call, then clears.
	createErrOnce error
	// pendingPolls makes GetBatch report in_progress that many times first.
	pendingPolls int

	createCalls int
	uploadCalls int
	pollCalls   int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		files:     map[string][]byte{},
		batches:   map[string]*inference.Batch{},
		failItems: map[int]bool{},
	}
}

func (f *fakeProvider) UploadBatchInput(_ context.Context, _ string, jsonl []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.uploadCalls++
	id := fmt.Sprintf("file-in-%d", f.nextID)
	f.files[id] = append([]byte(nil), jsonl...)
	return id, nil
}

func (f *fakeProvider) CreateBatch(_ context.Context, inputFileID string, metadata map[string]string) (inference.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErrOnce != nil {
		err := f.createErrOnce
		f.createErrOnce = nil
		return inference.Batch{}, err
	}

	input, ok := f.files[inputFileID]
	if !ok {
		return inference.Batch{}, fmt.Errorf("input file %s not found", inputFileID)
	}
	lines := bytes.Split(bytes.TrimSpace(input), []byte("\n"))
	if f.capacityAbove > 0 && len(lines) > f.capacityAbove {
		return inference.Batch{}, fmt.Errorf("too many items: %w", inference.ErrCapacity)
	}

	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	for _, raw := range lines {
		var req inference.RequestLine
		if err := json.Unmarshal(raw, &req); err != nil {
			return inference.Batch{}, err
		}
		cor, err := DecodeCorrelationID(req.CustomID)
		if err != nil {
			return inference.Batch{}, err
		}
		line := inference.ResponseLine{CustomID: req.CustomID}
		if f.failItems[cor.GlobalIndex] {
			line.Error = &inference.LineError{Code: "server_error", Message: "boom"}
			if f.failOnce {
				delete(f.failItems, cor.GlobalIndex)
			}
		} else {
			text := fmt.Sprintf("text %d", cor.GlobalIndex)
			if f.respond != nil {
				text = f.respond(cor)
			}
			line.Response = &inference.LineResponse{
				StatusCode: 200,
				Body: inference.ResponseBody{
					Choices: []inference.Choice{{Message: inference.ChoiceMessage{Content: text}}},
				},
			}
		}
		if err := enc.Encode(line); err != nil {
			return inference.Batch{}, err
		}
	}

	f.nextID++
	outID := fmt.Sprintf("file-out-%d", f.nextID)
	f.files[outID] = out.Bytes()

	f.nextID++
	b := &inference.Batch{
		ID:           fmt.Sprintf("batch-%d", f.nextID),
		InputFileID:  inputFileID,
		OutputFileID: outID,
		State:        inference.StateCompleted,
		Metadata:     metadata,
	}
	f.batches[b.ID] = b
	return *b, nil
}

func (f *fakeProvider) GetBatch(_ context.Context, batchID string) (inference.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pollCalls++
	b, ok := f.batches[batchID]
	if !ok {
		return inference.Batch{}, fmt.Errorf("batch %s not found", batchID)
	}
	if f.pendingPolls > 0 {
		f.pendingPolls--
		cp := *b
		cp.State = inference.StateInProgress
		cp.OutputFileID = ""
		return cp, nil
	}
	return *b, nil
}

func (f *fakeProvider) ListRecentBatches(_ context.Context, _ int) ([]inference.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []inference.Batch
	for _, b := range f.batches {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeProvider) DownloadFile(_ context.Context, fileID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[fileID]
	if !ok {
		return nil, fmt.Errorf("file %s not found", fileID)
	}
	return append([]byte(nil), data...), nil
}

// ---- builder ----

type fakeBuilder struct {
	result *archive.Result
	calls  int
}

func (b *fakeBuilder) Build(_ context.Context, _ uuid.UUID, _ string) (*archive.Result, error) {
	b.calls++
	return b.result, nil
}

// ---- assembly helpers ----

func makeItems(n int) []archive.WorkItem {
	items := make([]archive.WorkItem, n)
	for i := range items {
		name := fmt.Sprintf("%d.png", i+1)
		items[i] = archive.WorkItem{
			Filename:    name,
			BaseKey:     fmt.Sprintf("%d", i+1),
			GlobalIndex: i,
			SignedURL:   "https://signed.example/crops/" + name,
		}
	}
	return items
}

type fixture struct {
	jobs     *fakeJobRepo
	frames   *fakeFrameRepo
	batches  *fakeBatchRepo
	steps    *fakeStepRepo
	manifest *fakeManifest
	store    *fakeStore
	provider *fakeProvider
	builder  *fakeBuilder
	proc     *Processor
	job      *entity.Job
}

type fixedResolver struct{ client inference.Client }

func (r fixedResolver) ClientFor(_ context.Context, _ uuid.UUID) (inference.Client, error) {
	return r.client, nil
}

func newFixture(n int) *fixture {
	items := makeItems(n)
	f := &fixture{
		jobs:     newFakeJobRepo(),
		frames:   newFakeFrameRepo(),
		batches:  newFakeBatchRepo(),
		steps:    newFakeStepRepo(),
		manifest: newFakeManifest(),
		store:    newFakeStore(),
		provider: newFakeProvider(),
	}
	f.builder = &fakeBuilder{result: &archive.Result{
		Items:              items,
		FilteredArchiveKey: "filtered/test.zip",
		ThumbnailKey:       "thumbnails/test.png",
		TotalImages:        n,
	}}
	f.job = &entity.Job{
		ID:        uuid.New(),
		ProfileID: uuid.New(),
		Kind:      constants.JobKindOCR,
		Status:    constants.JobStatusPending,
		Step:      constants.StepPreprocessing,
	}
	f.jobs.add(f.job)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.proc = NewProcessor(f.jobs, f.frames, f.batches, f.steps, f.manifest, f.store,
		fixedResolver{client: f.provider},
		map[constants.JobKind]ArchiveBuilder{constants.JobKindOCR: f.builder},
		Config{PollInterval: time.Millisecond, WorkDir: ""},
		logger)
	f.proc.sleep = func(context.Context, time.Duration) error { return nil }
	return f
}
