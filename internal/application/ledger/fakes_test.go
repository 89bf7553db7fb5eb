package ledger_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/application/ledger"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// Infraestructura en memoria para los tests del motor de ledger. El
// memStore emula la semántica transaccional de PostgreSQL: cada tx opera
// sobre una copia del estado y solo se publica si fn no devuelve error,
// así los tests de atomicidad (todo-o-nada) son fieles. El mutex emula la
// serialización de SELECT FOR UPDATE sobre cabeceras y productos.

type storeData struct {
	products      map[string]entity.Product
	movements     []entity.InventoryMovement
	purchases     map[string]entity.Purchase
	purchaseItems map[string][]entity.PurchaseItem
	sales         map[string]entity.Sale
	saleItems     map[string][]entity.SaleItem
	payments      map[string][]entity.Payment
	suppliers     map[string]entity.Supplier
	customers     map[string]entity.Customer
	invoiceSeq    int64
}

func newStoreData() *storeData {
	return &storeData{
		products:      map[string]entity.Product{},
		purchases:     map[string]entity.Purchase{},
		purchaseItems: map[string][]entity.PurchaseItem{},
		sales:         map[string]entity.Sale{},
		saleItems:     map[string][]entity.SaleItem{},
		payments:      map[string][]entity.Payment{},
		suppliers:     map[string]entity.Supplier{},
		customers:     map[string]entity.Customer{},
	}
}

func (d *storeData) clone() *storeData {
	c := newStoreData()
	for k, v := range d.products {
		c.products[k] = v
	}
	c.movements = append(c.movements, d.movements...)
	for k, v := range d.purchases {
		c.purchases[k] = v
	}
	for k, v := range d.purchaseItems {
		c.purchaseItems[k] = append([]entity.PurchaseItem(nil), v...)
	}
	for k, v := range d.sales {
		c.sales[k] = v
	}
	for k, v := range d.saleItems {
		c.saleItems[k] = append([]entity.SaleItem(nil), v...)
	}
	for k, v := range d.payments {
		c.payments[k] = append([]entity.Payment(nil), v...)
	}
	for k, v := range d.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range d.customers {
		c.customers[k] = v
	}
	c.invoiceSeq = d.invoiceSeq
	return c
}

type dataSource interface {
	get() *storeData
}

type memStore struct {
	mu   sync.Mutex
	data *storeData
}

func newMemStore() *memStore {
	return &memStore{data: newStoreData()}
}

func (s *memStore) get() *storeData { return s.data }

type txView struct {
	d *storeData
}

func (v *txView) get() *storeData { return v.d }

// memTxRunner implementa ledger.TxRunner sobre el memStore con semántica
// copy-commit: error de fn descarta la copia (rollback).
type memTxRunner struct {
	store *memStore
}

var _ ledger.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) run(fn func(v *txView) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	view := &txView{d: r.store.data.clone()}
	if err := fn(view); err != nil {
		return err
	}
	r.store.data = view.d
	return nil
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.run(func(v *txView) error {
		return fn(&memMovementRepo{v}, &memProductRepo{v})
	})
}

func (r *memTxRunner) RunPurchasing(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.run(func(v *txView) error {
		return fn(&memPurchaseRepo{v}, &memMovementRepo{v}, &memProductRepo{v})
	})
}

func (r *memTxRunner) RunSales(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.run(func(v *txView) error {
		return fn(&memSaleRepo{v}, &memMovementRepo{v}, &memProductRepo{v})
	})
}

// ── repos en memoria ─────────────────────────────────────────────────────

type memProductRepo struct {
	src dataSource
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	r.src.get().products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.src.get().products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.src.get().products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.src.get().products {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.src.get().products[p.ID] = *p
	return nil
}

func (r *memProductRepo) UpdateStock(id string, stockQty int64) error {
	d := r.src.get()
	p, ok := d.products[id]
	if !ok {
		return fmt.Errorf("producto %s no existe", id)
	}
	p.StockQty = stockQty
	d.products[id] = p
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.src.get().products, id)
	return nil
}

type memMovementRepo struct {
	src dataSource
}

var _ repository.InventoryMovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(m *entity.InventoryMovement) error {
	d := r.src.get()
	d.movements = append(d.movements, *m)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	for _, m := range r.src.get().movements {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var filtered []*entity.InventoryMovement
	for i := range r.src.get().movements {
		m := r.src.get().movements[i]
		if m.ProductID != productID {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		cp := m
		filtered = append(filtered, &cp)
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (r *memMovementRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	for _, m := range r.src.get().movements {
		if m.ProductID == productID {
			sum += m.Quantity
		}
	}
	return sum, nil
}

type memPurchaseRepo struct {
	src dataSource
}

var _ repository.PurchaseRepository = (*memPurchaseRepo)(nil)

func (r *memPurchaseRepo) Create(p *entity.Purchase) error {
	r.src.get().purchases[p.ID] = *p
	return nil
}

func (r *memPurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	d := r.src.get()
	d.purchaseItems[item.PurchaseID] = append(d.purchaseItems[item.PurchaseID], *item)
	return nil
}

func (r *memPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	if p, ok := r.src.get().purchases[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *memPurchaseRepo) GetForUpdate(id string) (*entity.Purchase, error) {
	return r.GetByID(id)
}

func (r *memPurchaseRepo) GetItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, item := range r.src.get().purchaseItems[purchaseID] {
		cp := item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.src.get().purchases {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPurchaseRepo) UpdateStatus(id, status string) error {
	d := r.src.get()
	p, ok := d.purchases[id]
	if !ok {
		return fmt.Errorf("orden %s no existe", id)
	}
	p.Status = status
	d.purchases[id] = p
	return nil
}

func (r *memPurchaseRepo) DeleteItems(purchaseID string) error {
	delete(r.src.get().purchaseItems, purchaseID)
	return nil
}

func (r *memPurchaseRepo) Delete(id string) error {
	delete(r.src.get().purchases, id)
	return nil
}

type memSaleRepo struct {
	src dataSource
}

var _ repository.SaleRepository = (*memSaleRepo)(nil)

func (r *memSaleRepo) Create(s *entity.Sale) error {
	r.src.get().sales[s.ID] = *s
	return nil
}

func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	d := r.src.get()
	d.saleItems[item.SaleID] = append(d.saleItems[item.SaleID], *item)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	if s, ok := r.src.get().sales[id]; ok {
		cp := s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *memSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, item := range r.src.get().saleItems[saleID] {
		cp := item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.src.get().sales {
		cp := s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSaleRepo) UpdateTotals(s *entity.Sale) error {
	d := r.src.get()
	cur, ok := d.sales[s.ID]
	if !ok {
		return fmt.Errorf("venta %s no existe", s.ID)
	}
	cur.TotalAmount = s.TotalAmount
	cur.PaidAmount = s.PaidAmount
	cur.Status = s.Status
	d.sales[s.ID] = cur
	return nil
}

func (r *memSaleRepo) NextInvoiceNumber() (string, error) {
	d := r.src.get()
	d.invoiceSeq++
	return fmt.Sprintf("INV-%06d", d.invoiceSeq), nil
}

func (r *memSaleRepo) CreatePayment(p *entity.Payment) error {
	d := r.src.get()
	d.payments[p.SaleID] = append(d.payments[p.SaleID], *p)
	return nil
}

func (r *memSaleRepo) GetPayments(saleID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.src.get().payments[saleID] {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

type memSupplierRepo struct {
	src dataSource
}

var _ repository.SupplierRepository = (*memSupplierRepo)(nil)

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	r.src.get().suppliers[s.ID] = *s
	return nil
}

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if s, ok := r.src.get().suppliers[id]; ok {
		cp := s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.src.get().suppliers {
		cp := s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) error {
	r.src.get().suppliers[s.ID] = *s
	return nil
}

func (r *memSupplierRepo) Delete(id string) error {
	delete(r.src.get().suppliers, id)
	return nil
}

type memCustomerRepo struct {
	src dataSource
}

var _ repository.CustomerRepository = (*memCustomerRepo)(nil)

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	r.src.get().customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if c, ok := r.src.get().customers[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.src.get().customers {
		cp := c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	r.src.get().customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	delete(r.src.get().customers, id)
	return nil
}

// ── helpers de escenario ─────────────────────────────────────────────────

type ledgerFixture struct {
	store        *memStore
	txRunner     *memTxRunner
	productRepo  *memProductRepo
	movRepo      *memMovementRepo
	purchaseRepo *memPurchaseRepo
	saleRepo     *memSaleRepo
	supplierRepo *memSupplierRepo
	customerRepo *memCustomerRepo
}

func newLedgerFixture() *ledgerFixture {
	store := newMemStore()
	return &ledgerFixture{
		store:        store,
		txRunner:     &memTxRunner{store: store},
		productRepo:  &memProductRepo{src: store},
		movRepo:      &memMovementRepo{src: store},
		purchaseRepo: &memPurchaseRepo{src: store},
		saleRepo:     &memSaleRepo{src: store},
		supplierRepo: &memSupplierRepo{src: store},
		customerRepo: &memCustomerRepo{src: store},
	}
}

func (f *ledgerFixture) addProduct(salePrice, taxRate string, stock int64) string {
	id := uuid.New().String()
	f.store.data.products[id] = entity.Product{
		ID:        id,
		SKU:       "SKU-" + id[:8],
		Model:     "Modelo " + id[:8],
		SalePrice: decimal.RequireFromString(salePrice),
		TaxRate:   decimal.RequireFromString(taxRate),
		StockQty:  stock,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	return id
}

func (f *ledgerFixture) addSupplier() string {
	id := uuid.New().String()
	f.store.data.suppliers[id] = entity.Supplier{ID: id, Name: "Proveedor", CreatedAt: time.Now()}
	return id
}

func (f *ledgerFixture) addCustomer() string {
	id := uuid.New().String()
	f.store.data.customers[id] = entity.Customer{ID: id, Name: "Cliente", Status: "Active", CreatedAt: time.Now()}
	return id
}

// sumMovements devuelve Σ(quantity) del producto directamente del log.
func (f *ledgerFixture) sumMovements(productID string) int64 {
	var sum int64
	for _, m := range f.store.data.movements {
		if m.ProductID == productID {
			sum += m.Quantity
		}
	}
	return sum
}

func (f *ledgerFixture) stockOf(productID string) int64 {
	return f.store.data.products[productID].StockQty
}
